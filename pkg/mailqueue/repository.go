package mailqueue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotificationNotFound = errors.New("queued notification not found")

// QueueRepository defines the interface for queued notification storage.
type QueueRepository interface {
	Enqueue(ctx context.Context, params EnqueueParams) (QueuedNotification, error)
	GetPending(ctx context.Context, limit int32) ([]QueuedNotification, error)
	MarkAsSent(ctx context.Context, id uuid.UUID) error
}

// PostgresQueueRepository implements QueueRepository using PostgreSQL.
type PostgresQueueRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresQueueRepository(pool *pgxpool.Pool) *PostgresQueueRepository {
	return &PostgresQueueRepository{pool: pool}
}

const queueColumns = `id, to_emails, cc_emails, bcc_emails, subject, body, is_sent, created_at, sent_at`

func scanQueued(row pgx.Row) (QueuedNotification, error) {
	var n QueuedNotification
	err := row.Scan(&n.ID, &n.ToEmails, &n.CCEmails, &n.BCCEmails, &n.Subject, &n.Body, &n.IsSent, &n.CreatedAt, &n.SentAt)
	return n, err
}

func (r *PostgresQueueRepository) Enqueue(ctx context.Context, params EnqueueParams) (QueuedNotification, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO queued_notification (id, to_emails, cc_emails, bcc_emails, subject, body, is_sent, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, false, $7)
		 RETURNING `+queueColumns,
		uuid.New(), params.ToEmails, params.CCEmails, params.BCCEmails, params.Subject, params.Body, time.Now().UTC())
	return scanQueued(row)
}

// GetPending returns unsent notifications oldest first.
func (r *PostgresQueueRepository) GetPending(ctx context.Context, limit int32) ([]QueuedNotification, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+queueColumns+` FROM queued_notification
		 WHERE is_sent = false
		 ORDER BY created_at
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := []QueuedNotification{}
	for rows.Next() {
		n, err := scanQueued(rows)
		if err != nil {
			return nil, err
		}
		pending = append(pending, n)
	}
	return pending, rows.Err()
}

func (r *PostgresQueueRepository) MarkAsSent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE queued_notification SET is_sent = true, sent_at = $2 WHERE id = $1`,
		id, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
