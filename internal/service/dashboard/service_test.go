package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/service/dashboard"
)

type stubRepo struct {
	byOwner map[string]domain.DashboardSummary
	err     error
}

func (s stubRepo) Summary(_ context.Context, ownerID string) (*domain.DashboardSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	sum := s.byOwner[ownerID]
	return &sum, nil
}

func TestSummary(t *testing.T) {
	svc := dashboard.NewService(stubRepo{byOwner: map[string]domain.DashboardSummary{
		"u1": {Groups: 2, Templates: 3, Sents: 7},
	}})

	got, err := svc.Summary(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if *got != (domain.DashboardSummary{Groups: 2, Templates: 3, Sents: 7}) {
		t.Errorf("summary = %+v", got)
	}

	got, _ = svc.Summary(context.Background(), "nobody")
	if *got != (domain.DashboardSummary{}) {
		t.Errorf("empty owner summary = %+v", got)
	}
}

func TestSummaryError(t *testing.T) {
	svc := dashboard.NewService(stubRepo{err: errors.New("db down")})
	if _, err := svc.Summary(context.Background(), "u1"); err == nil {
		t.Fatal("expected error")
	}
}
