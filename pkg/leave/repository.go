package leave

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeaveRepository defines the interface for leave request storage.
type LeaveRepository interface {
	GetLeave(ctx context.Context, id uuid.UUID) (LeaveRequest, error)
	ListLeaves(ctx context.Context, params ListLeavesParams) ([]LeaveRequest, error)
	CreateLeave(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status, comment string) (LeaveRequest, error)
}

// PostgresLeaveRepository implements LeaveRepository using PostgreSQL.
type PostgresLeaveRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresLeaveRepository(pool *pgxpool.Pool) *PostgresLeaveRepository {
	return &PostgresLeaveRepository{pool: pool}
}

const leaveColumns = `id, employee_id, leave_type, start_date, end_date, days,
	reason, status, COALESCE(approver_comment, ''), created_at, updated_at`

func scanLeave(row pgx.Row) (LeaveRequest, error) {
	var l LeaveRequest
	err := row.Scan(&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.Days,
		&l.Reason, &l.Status, &l.ApproverComment, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *PostgresLeaveRepository) GetLeave(ctx context.Context, id uuid.UUID) (LeaveRequest, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+leaveColumns+` FROM leave_request WHERE id = $1`, id)
	l, err := scanLeave(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, ErrLeaveNotFound
	}
	return l, err
}

func (r *PostgresLeaveRepository) ListLeaves(ctx context.Context, params ListLeavesParams) ([]LeaveRequest, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+leaveColumns+` FROM leave_request
		 WHERE ($1 = '00000000-0000-0000-0000-000000000000'::uuid OR employee_id = $1)
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		params.EmployeeID, string(params.Status), limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := []LeaveRequest{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func (r *PostgresLeaveRepository) CreateLeave(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO leave_request (id, employee_id, leave_type, start_date, end_date,
			days, reason, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		 RETURNING `+leaveColumns,
		req.ID, req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate,
		req.Days, req.Reason, req.Status, time.Now().UTC())
	return scanLeave(row)
}

func (r *PostgresLeaveRepository) SetStatus(ctx context.Context, id uuid.UUID, status Status, comment string) (LeaveRequest, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE leave_request
		 SET status = $2, approver_comment = $3, updated_at = $4
		 WHERE id = $1
		 RETURNING `+leaveColumns,
		id, status, comment, time.Now().UTC())
	l, err := scanLeave(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return LeaveRequest{}, ErrLeaveNotFound
	}
	return l, err
}
