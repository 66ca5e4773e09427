package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/service/group"
)

// GroupRepo implements group.Repository against PostgreSQL.
type GroupRepo struct{ db *sql.DB }

// NewGroupRepo creates a Postgres-backed group repository.
func NewGroupRepo(db *sql.DB) *GroupRepo { return &GroupRepo{db: db} }

func (r *GroupRepo) Get(ctx context.Context, id string) (*domain.Group, error) {
	if !validID(id) {
		return nil, group.ErrNotFound
	}
	var g domain.Group
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, emails, created_at
		FROM bulkmail_groups
		WHERE id = $1
	`, id).Scan(&g.ID, &g.OwnerID, &g.Name, pq.Array(&g.Emails), &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, group.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

func (r *GroupRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, emails, created_at
		FROM bulkmail_groups
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	out := []domain.Group{}
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Name, pq.Array(&g.Emails), &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return out, nil
}

func (r *GroupRepo) Create(ctx context.Context, g *domain.Group) error {
	emails := g.Emails
	if emails == nil {
		emails = []string{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bulkmail_groups (id, owner_id, name, emails, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, g.ID, g.OwnerID, g.Name, pq.Array(emails), g.CreatedAt)
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (r *GroupRepo) Delete(ctx context.Context, ownerID, id string) error {
	if !validID(id) {
		return group.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bulkmail_groups WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return group.ErrNotFound
	}
	return nil
}
