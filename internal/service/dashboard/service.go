// Package dashboard summarizes an owner's groups, templates and sends.
package dashboard

import (
	"context"

	"github.com/ignite/bulkmail/internal/domain"
)

// Repository counts an owner's entities.
type Repository interface {
	Summary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error)
}

// Service returns dashboard figures.
type Service struct {
	repo Repository
}

// NewService creates a dashboard service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary returns the owner's entity counts.
func (s *Service) Summary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	return s.repo.Summary(ctx, ownerID)
}
