package sending

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
)

// GroupFinder looks up a group by id. It must return group.ErrNotFound when
// the id does not resolve.
type GroupFinder interface {
	Get(ctx context.Context, id string) (*domain.Group, error)
}

// TemplateFinder looks up a template by id. It must return
// template.ErrNotFound when the id does not resolve.
type TemplateFinder interface {
	Get(ctx context.Context, id string) (*domain.Template, error)
}

// Repository stores the send history.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Insert writes one sent record.
	Insert(ctx context.Context, rec *domain.SentRecord) error

	// ListByOwner returns the owner's records newest first, each joined with
	// its group's current name ("" when the group is gone).
	ListByOwner(ctx context.Context, ownerID string) ([]domain.SentEntry, error)
}

// Dispatcher hands a message to the outbound transport. It must not block
// on delivery and reports no failure.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg domain.OutboundMessage)
}
