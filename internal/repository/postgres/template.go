package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ignite/bulkmail/internal/domain"
	"github.com/ignite/bulkmail/internal/service/template"
)

// TemplateRepo implements template.Repository against PostgreSQL.
type TemplateRepo struct{ db *sql.DB }

// NewTemplateRepo creates a Postgres-backed template repository.
func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func (r *TemplateRepo) Get(ctx context.Context, id string) (*domain.Template, error) {
	if !validID(id) {
		return nil, template.ErrNotFound
	}
	var t domain.Template
	err := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, content, created_at
		FROM bulkmail_templates
		WHERE id = $1
	`, id).Scan(&t.ID, &t.OwnerID, &t.Name, &t.Content, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, template.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

func (r *TemplateRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Template, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, content, created_at
		FROM bulkmail_templates
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	out := []domain.Template{}
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return out, nil
}

func (r *TemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bulkmail_templates (id, owner_id, name, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, t.ID, t.OwnerID, t.Name, t.Content, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

func (r *TemplateRepo) Delete(ctx context.Context, ownerID, id string) error {
	if !validID(id) {
		return template.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bulkmail_templates WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return template.ErrNotFound
	}
	return nil
}
