package template

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
)

// Repository defines the data access contract for templates.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a template by id regardless of owner. Returns ErrNotFound
	// if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Template, error)

	// ListByOwner returns the owner's templates, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Template, error)

	// Create inserts a new template.
	Create(ctx context.Context, t *domain.Template) error

	// Delete removes the owner's template. Returns ErrNotFound if no row
	// matched.
	Delete(ctx context.Context, ownerID, id string) error
}
