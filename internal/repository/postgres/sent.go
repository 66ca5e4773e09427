package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ignite/bulkmail/internal/domain"
)

// SentRepo implements sending.Repository against PostgreSQL. group_id has
// no foreign key so records survive group deletion.
type SentRepo struct{ db *sql.DB }

// NewSentRepo creates a Postgres-backed sent history repository.
func NewSentRepo(db *sql.DB) *SentRepo { return &SentRepo{db: db} }

func (r *SentRepo) Insert(ctx context.Context, rec *domain.SentRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bulkmail_sent (id, owner_id, subject, group_id, message_label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.OwnerID, rec.Subject, rec.GroupID, rec.MessageLabel, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sent record: %w", err)
	}
	return nil
}

func (r *SentRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.SentEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id, s.owner_id, s.subject, s.group_id, s.message_label, s.created_at,
		       COALESCE(g.name, '')
		FROM bulkmail_sent s
		LEFT JOIN bulkmail_groups g ON g.id = s.group_id
		WHERE s.owner_id = $1
		ORDER BY s.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sent records: %w", err)
	}
	defer rows.Close()

	out := []domain.SentEntry{}
	for rows.Next() {
		var e domain.SentEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Subject, &e.GroupID, &e.MessageLabel, &e.CreatedAt, &e.GroupName); err != nil {
			return nil, fmt.Errorf("scan sent record: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sent records: %w", err)
	}
	return out, nil
}
