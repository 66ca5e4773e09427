package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ignite/bulkmail/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token revoked")
)

const issuerName = "bulkmail"

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens.
type Issuer struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationStore
	now     func() time.Time
}

// NewIssuer creates a token issuer. revoked may be nil, in which case
// tokens cannot be revoked before they expire.
func NewIssuer(secret string, ttl time.Duration, revoked RevocationStore) *Issuer {
	return &Issuer{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

// Issue returns a signed token for the user.
func (i *Issuer) Issue(u *domain.User) (string, *domain.Identity, error) {
	now := i.now()
	id := &domain.Identity{
		UserID:  u.ID,
		Email:   u.Email,
		TokenID: uuid.New().String(),
		Expires: now.Add(i.ttl),
	}
	claims := Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.TokenID,
			Issuer:    issuerName,
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(id.Expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, id, nil
}

// Verify parses and checks a token. It returns ErrInvalidToken for any
// malformed, expired or foreign token and ErrTokenRevoked after logout.
func (i *Issuer) Verify(ctx context.Context, raw string) (*domain.Identity, error) {
	claims := new(Claims)
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	if i.revoked != nil {
		revoked, err := i.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return &domain.Identity{
		UserID:  claims.Subject,
		Email:   claims.Email,
		TokenID: claims.ID,
		Expires: claims.ExpiresAt.Time,
	}, nil
}

// Revoke invalidates the identity's token for the rest of its lifetime.
func (i *Issuer) Revoke(ctx context.Context, id *domain.Identity) error {
	if i.revoked == nil {
		return nil
	}
	ttl := id.Expires.Sub(i.now())
	if ttl <= 0 {
		return nil
	}
	return i.revoked.Revoke(ctx, id.TokenID, ttl)
}
