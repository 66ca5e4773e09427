package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/metrics"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

// Service implements account business logic.
type Service struct {
	repo       Repository
	tokens     TokenIssuer
	bcryptCost int
}

// NewService creates an account service. A bcryptCost outside bcrypt's
// accepted range uses bcrypt.DefaultCost.
func NewService(repo Repository, tokens TokenIssuer, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// RegisterInput holds the fields for creating an account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is the result of a successful login.
type Session struct {
	Token    string
	Identity *domain.Identity
	User     *domain.User
}

// Register creates a new account. Emails are compared case-insensitively.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Login checks the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrNotFound) {
		metrics.IncAuthOutcome("login", "failure")
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		metrics.IncAuthOutcome("login", "failure")
		return nil, ErrBadPassword
	}

	token, id, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	metrics.IncAuthOutcome("login", "success")
	logger.Info("user logged in", "user_id", u.ID)
	return &Session{Token: token, Identity: id, User: u}, nil
}

// Logout revokes the caller's current token.
func (s *Service) Logout(ctx context.Context, id *domain.Identity) error {
	if err := s.tokens.Revoke(ctx, id); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	logger.Info("user logged out", "user_id", id.UserID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
