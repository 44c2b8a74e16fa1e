package kpi

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KPIRepository defines the interface for appraisal plan and feedback
// request storage.
type KPIRepository interface {
	GetPlan(ctx context.Context, id uuid.UUID) (Plan, error)
	ListPlans(ctx context.Context, employeeID uuid.UUID) ([]Plan, error)
	CreatePlan(ctx context.Context, params CreatePlanParams) (Plan, error)
	CompletePlan(ctx context.Context, id uuid.UUID, rating string) (Plan, error)

	GetFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error)
	CreateFeedback(ctx context.Context, params RequestFeedbackParams) (FeedbackRequest, error)
	CompleteFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error)
}

// PostgresKPIRepository implements KPIRepository using PostgreSQL.
type PostgresKPIRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresKPIRepository(pool *pgxpool.Pool) *PostgresKPIRepository {
	return &PostgresKPIRepository{pool: pool}
}

const planColumns = `id, employee_id, plan_name, period, COALESCE(rating, ''),
	status, completed_on, created_at, updated_at`

func scanPlan(row pgx.Row) (Plan, error) {
	var p Plan
	err := row.Scan(&p.ID, &p.EmployeeID, &p.PlanName, &p.Period, &p.Rating,
		&p.Status, &p.CompletedOn, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresKPIRepository) GetPlan(ctx context.Context, id uuid.UUID) (Plan, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+planColumns+` FROM kpi_plan WHERE id = $1`, id)
	p, err := scanPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	}
	return p, err
}

func (r *PostgresKPIRepository) ListPlans(ctx context.Context, employeeID uuid.UUID) ([]Plan, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+planColumns+` FROM kpi_plan
		 WHERE ($1 = '00000000-0000-0000-0000-000000000000'::uuid OR employee_id = $1)
		 ORDER BY created_at DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *PostgresKPIRepository) CreatePlan(ctx context.Context, params CreatePlanParams) (Plan, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO kpi_plan (id, employee_id, plan_name, period, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING `+planColumns,
		uuid.New(), params.EmployeeID, params.PlanName, params.Period,
		PlanStatusInProgress, time.Now().UTC())
	return scanPlan(row)
}

func (r *PostgresKPIRepository) CompletePlan(ctx context.Context, id uuid.UUID, rating string) (Plan, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx,
		`UPDATE kpi_plan
		 SET status = $2, rating = $3, completed_on = $4, updated_at = $4
		 WHERE id = $1
		 RETURNING `+planColumns,
		id, PlanStatusComplete, rating, now)
	p, err := scanPlan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Plan{}, ErrPlanNotFound
	}
	return p, err
}

const feedbackColumns = `id, employee_id, topic, due_date, status, created_at, updated_at`

func scanFeedback(row pgx.Row) (FeedbackRequest, error) {
	var f FeedbackRequest
	err := row.Scan(&f.ID, &f.EmployeeID, &f.Topic, &f.DueDate, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *PostgresKPIRepository) GetFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+feedbackColumns+` FROM feedback_request WHERE id = $1`, id)
	f, err := scanFeedback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return FeedbackRequest{}, ErrFeedbackNotFound
	}
	return f, err
}

func (r *PostgresKPIRepository) CreateFeedback(ctx context.Context, params RequestFeedbackParams) (FeedbackRequest, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO feedback_request (id, employee_id, topic, due_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)
		 RETURNING `+feedbackColumns,
		uuid.New(), params.EmployeeID, params.Topic, params.DueDate,
		FeedbackStatusRequested, time.Now().UTC())
	return scanFeedback(row)
}

func (r *PostgresKPIRepository) CompleteFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE feedback_request SET status = $2, updated_at = $3
		 WHERE id = $1
		 RETURNING `+feedbackColumns,
		id, FeedbackStatusCompleted, time.Now().UTC())
	f, err := scanFeedback(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return FeedbackRequest{}, ErrFeedbackNotFound
	}
	return f, err
}
