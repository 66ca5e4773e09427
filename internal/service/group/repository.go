package group

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
)

// Repository defines the data access contract for groups.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a group by id regardless of owner. Returns ErrNotFound if
	// it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Group, error)

	// ListByOwner returns the owner's groups, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Group, error)

	// Create inserts a new group.
	Create(ctx context.Context, g *domain.Group) error

	// Delete removes the owner's group. Returns ErrNotFound if no row matched.
	Delete(ctx context.Context, ownerID, id string) error
}
