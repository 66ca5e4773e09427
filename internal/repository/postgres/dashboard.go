package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/bulkmail/internal/domain"
)

// DashboardRepo implements dashboard.Repository against PostgreSQL.
type DashboardRepo struct{ db *sql.DB }

// NewDashboardRepo creates a Postgres-backed dashboard repository.
func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{db: db} }

func (r *DashboardRepo) Summary(ctx context.Context, ownerID string) (*domain.DashboardSummary, error) {
	var s domain.DashboardSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM bulkmail_groups WHERE owner_id = $1),
			(SELECT COUNT(*) FROM bulkmail_templates WHERE owner_id = $1),
			(SELECT COUNT(*) FROM bulkmail_sent WHERE owner_id = $1)
	`, ownerID).Scan(&s.Groups, &s.Templates, &s.Sents)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
