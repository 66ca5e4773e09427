package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/metrics"
	"github.com/ignite/bulkmail/internal/pkg/httputil"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying the caller's identity.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the identity stored by RequireUser, if any.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(*domain.Identity)
	return id, ok && id != nil
}

// TokenFromRequest extracts a bearer token from the Authorization header,
// falling back to the named cookie.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// Middleware guards routes with session tokens.
type Middleware struct {
	issuer     *Issuer
	cookieName string
}

// NewMiddleware creates the auth middleware.
func NewMiddleware(issuer *Issuer, cookieName string) *Middleware {
	return &Middleware{issuer: issuer, cookieName: cookieName}
}

// RequireUser rejects requests without a valid token with 401 and stores
// the caller's identity in the request context otherwise.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := TokenFromRequest(r, m.cookieName)
		if raw == "" {
			httputil.Unauthorized(w, "User not logged in")
			return
		}

		id, err := m.issuer.Verify(r.Context(), raw)
		if err != nil {
			metrics.IncAuthOutcome("verify", "failure")
			if !errors.Is(err, ErrInvalidToken) && !errors.Is(err, ErrTokenRevoked) {
				logger.Error("token verification failed", "error", err)
			}
			httputil.Unauthorized(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// SetTokenCookie stores the token in an HttpOnly cookie that expires with it.
func (m *Middleware) SetTokenCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie removes the token cookie.
func (m *Middleware) ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   m.cookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// Issuer returns the token issuer used by the middleware.
func (m *Middleware) Issuer() *Issuer { return m.issuer }

// CookieName returns the name of the session cookie.
func (m *Middleware) CookieName() string { return m.cookieName }
