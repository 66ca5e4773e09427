package account

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
)

// Repository defines the data access contract for users.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts a user. Returns ErrUserExists if the email is taken.
	Create(ctx context.Context, u *domain.User) error

	// GetByEmail returns ErrNotFound if no user has the address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer mints and revokes session tokens.
type TokenIssuer interface {
	Issue(u *domain.User) (string, *domain.Identity, error)
	Revoke(ctx context.Context, id *domain.Identity) error
}
