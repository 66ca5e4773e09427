package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/pkg/logger"
)

// Service implements group business logic.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService creates a group service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// CreateInput holds the fields for creating a new group.
type CreateInput struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}

// Create validates and persists a new group. Surrounding whitespace is
// trimmed from every address and blank entries are dropped.
func (s *Service) Create(ctx context.Context, ownerID string, input CreateInput) (*domain.Group, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	emails := make([]string, 0, len(input.Emails))
	for _, e := range input.Emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if err := s.validate.Var(e, "email"); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, e)
		}
		emails = append(emails, e)
	}

	g := &domain.Group{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Emails:    emails,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	logger.Info("group created", "group_id", g.ID, "owner_id", ownerID, "recipient_count", len(emails))
	return g, nil
}

// List returns the owner's groups.
func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Group, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes one of the owner's groups. Existing sent records keep
// their group id.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	logger.Info("group deleted", "group_id", id, "owner_id", ownerID)
	return nil
}
