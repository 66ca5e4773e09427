package template

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

// Service implements template business logic.
type Service struct {
	repo Repository
}

// NewService creates a template service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds the fields for creating a new template.
type CreateInput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Create persists a new template. Content is stored exactly as given.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Template, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	t := &domain.Template{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("template created", "template_id", t.ID, "owner_id", ownerID)
	return t, nil
}

// List returns the owner's templates.
func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Template, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes one of the owner's templates. Sent records that used it
// keep the template name as their label.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
