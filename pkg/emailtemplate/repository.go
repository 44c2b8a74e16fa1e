package emailtemplate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateRepository defines the interface for template store operations
type TemplateRepository interface {
	GetTemplate(ctx context.Context, id uuid.UUID) (Template, error)
	GetActiveByType(ctx context.Context, templateType TemplateType) (Template, error)
	ListTemplates(ctx context.Context, params ListTemplatesParams) ([]Template, error)
	CountTemplates(ctx context.Context, search string) (int64, error)
	CreateTemplate(ctx context.Context, params CreateTemplateParams) (Template, error)
	UpdateTemplate(ctx context.Context, params UpdateTemplateParams) (Template, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status Status) error
	IsAnotherTemplateActive(ctx context.Context, templateType TemplateType, excludeID uuid.UUID) (bool, error)
}

// PostgresTemplateRepository implements TemplateRepository using PostgreSQL
type PostgresTemplateRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTemplateRepository(pool *pgxpool.Pool) *PostgresTemplateRepository {
	return &PostgresTemplateRepository{pool: pool}
}

const templateColumns = `id, type, subject, body, to_emails, cc_emails, bcc_emails, status, created_at, updated_at`

func scanTemplate(row pgx.Row) (Template, error) {
	var t Template
	err := row.Scan(&t.ID, &t.Type, &t.Subject, &t.Body, &t.ToEmails, &t.CCEmails, &t.BCCEmails, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PostgresTemplateRepository) GetTemplate(ctx context.Context, id uuid.UUID) (Template, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM notification_template WHERE id = $1`, id)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Template{}, ErrTemplateNotFound
	}
	return t, err
}

func (r *PostgresTemplateRepository) GetActiveByType(ctx context.Context, templateType TemplateType) (Template, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM notification_template WHERE type = $1 AND status = $2`,
		templateType, StatusActive)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Template{}, ErrTemplateNotFound
	}
	return t, err
}

func (r *PostgresTemplateRepository) ListTemplates(ctx context.Context, params ListTemplatesParams) ([]Template, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+templateColumns+` FROM notification_template
		 WHERE ($1 = '' OR type ILIKE '%' || $1 || '%' OR subject ILIKE '%' || $1 || '%')
		 ORDER BY type, created_at DESC
		 LIMIT $2 OFFSET $3`,
		strings.TrimSpace(params.Search), limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *PostgresTemplateRepository) CountTemplates(ctx context.Context, search string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notification_template
		 WHERE ($1 = '' OR type ILIKE '%' || $1 || '%' OR subject ILIKE '%' || $1 || '%')`,
		strings.TrimSpace(search)).Scan(&count)
	return count, err
}

func (r *PostgresTemplateRepository) CreateTemplate(ctx context.Context, params CreateTemplateParams) (Template, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO notification_template (id, type, subject, body, to_emails, cc_emails, bcc_emails, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		 RETURNING `+templateColumns,
		uuid.New(), params.Type, params.Subject, params.Body,
		params.ToEmails, params.CCEmails, params.BCCEmails, params.Status, time.Now().UTC())
	return scanTemplate(row)
}

func (r *PostgresTemplateRepository) UpdateTemplate(ctx context.Context, params UpdateTemplateParams) (Template, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE notification_template
		 SET subject = $2, body = $3, to_emails = $4, cc_emails = $5, bcc_emails = $6, updated_at = $7
		 WHERE id = $1
		 RETURNING `+templateColumns,
		params.ID, params.Subject, params.Body, params.ToEmails, params.CCEmails, params.BCCEmails, time.Now().UTC())
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Template{}, ErrTemplateNotFound
	}
	return t, err
}

func (r *PostgresTemplateRepository) ChangeStatus(ctx context.Context, id uuid.UUID, status Status) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notification_template SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *PostgresTemplateRepository) IsAnotherTemplateActive(ctx context.Context, templateType TemplateType, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM notification_template
			WHERE type = $1 AND status = $2 AND id <> $3
		 )`, templateType, StatusActive, excludeID).Scan(&exists)
	return exists, err
}
