package exit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResignationRepository defines the interface for resignation storage.
type ResignationRepository interface {
	GetResignation(ctx context.Context, id uuid.UUID) (Resignation, error)
	ListResignations(ctx context.Context, params ListResignationsParams) ([]Resignation, error)
	CreateResignation(ctx context.Context, r Resignation) (Resignation, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status, lastWorkingDay *time.Time) (Resignation, error)
	SetClearance(ctx context.Context, id uuid.UUID, noDueGranted, fnfSettled bool) (Resignation, error)
}

// PostgresResignationRepository implements ResignationRepository using
// PostgreSQL.
type PostgresResignationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresResignationRepository(pool *pgxpool.Pool) *PostgresResignationRepository {
	return &PostgresResignationRepository{pool: pool}
}

const resignationColumns = `id, employee_id, resignation_date, last_working_day,
	reason, status, no_due_granted, fnf_settled, created_at, updated_at`

func scanResignation(row pgx.Row) (Resignation, error) {
	var res Resignation
	err := row.Scan(&res.ID, &res.EmployeeID, &res.ResignationDate, &res.LastWorkingDay,
		&res.Reason, &res.Status, &res.NoDueGranted, &res.FnFSettled, &res.CreatedAt, &res.UpdatedAt)
	return res, err
}

func (r *PostgresResignationRepository) GetResignation(ctx context.Context, id uuid.UUID) (Resignation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+resignationColumns+` FROM resignation WHERE id = $1`, id)
	res, err := scanResignation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Resignation{}, ErrResignationNotFound
	}
	return res, err
}

func (r *PostgresResignationRepository) ListResignations(ctx context.Context, params ListResignationsParams) ([]Resignation, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+resignationColumns+` FROM resignation
		 WHERE ($1 = '00000000-0000-0000-0000-000000000000'::uuid OR employee_id = $1)
		   AND ($2 = '' OR status = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		params.EmployeeID, string(params.Status), limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resignations := []Resignation{}
	for rows.Next() {
		res, err := scanResignation(rows)
		if err != nil {
			return nil, err
		}
		resignations = append(resignations, res)
	}
	return resignations, rows.Err()
}

func (r *PostgresResignationRepository) CreateResignation(ctx context.Context, res Resignation) (Resignation, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO resignation (id, employee_id, resignation_date, reason, status,
			no_due_granted, fnf_settled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, false, false, $6, $6)
		 RETURNING `+resignationColumns,
		res.ID, res.EmployeeID, res.ResignationDate, res.Reason, res.Status, time.Now().UTC())
	return scanResignation(row)
}

func (r *PostgresResignationRepository) SetStatus(ctx context.Context, id uuid.UUID, status Status, lastWorkingDay *time.Time) (Resignation, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE resignation
		 SET status = $2, last_working_day = COALESCE($3, last_working_day), updated_at = $4
		 WHERE id = $1
		 RETURNING `+resignationColumns,
		id, status, lastWorkingDay, time.Now().UTC())
	res, err := scanResignation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Resignation{}, ErrResignationNotFound
	}
	return res, err
}

func (r *PostgresResignationRepository) SetClearance(ctx context.Context, id uuid.UUID, noDueGranted, fnfSettled bool) (Resignation, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE resignation
		 SET no_due_granted = $2, fnf_settled = $3, updated_at = $4
		 WHERE id = $1
		 RETURNING `+resignationColumns,
		id, noDueGranted, fnfSettled, time.Now().UTC())
	res, err := scanResignation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Resignation{}, ErrResignationNotFound
	}
	return res, err
}
