package grievance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GrievanceRepository defines the interface for grievance storage.
type GrievanceRepository interface {
	GetByTicketNo(ctx context.Context, ticketNo string) (Grievance, error)
	ListGrievances(ctx context.Context, params ListGrievancesParams) ([]Grievance, error)
	CreateGrievance(ctx context.Context, g Grievance) (Grievance, error)
	SetLevel(ctx context.Context, ticketNo string, level int, status Status) (Grievance, error)
	SetResolution(ctx context.Context, ticketNo string, resolution string, status Status) (Grievance, error)
	ListOwners(ctx context.Context, level int) ([]Owner, error)
	AddOwner(ctx context.Context, level int, email string) (Owner, error)
}

// PostgresGrievanceRepository implements GrievanceRepository using PostgreSQL.
type PostgresGrievanceRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresGrievanceRepository(pool *pgxpool.Pool) *PostgresGrievanceRepository {
	return &PostgresGrievanceRepository{pool: pool}
}

const grievanceColumns = `id, ticket_no, employee_id, category, description,
	level, status, COALESCE(resolution, ''), raised_on, updated_at`

func scanGrievance(row pgx.Row) (Grievance, error) {
	var g Grievance
	err := row.Scan(&g.ID, &g.TicketNo, &g.EmployeeID, &g.Category, &g.Description,
		&g.Level, &g.Status, &g.Resolution, &g.RaisedOn, &g.UpdatedAt)
	return g, err
}

func (r *PostgresGrievanceRepository) GetByTicketNo(ctx context.Context, ticketNo string) (Grievance, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+grievanceColumns+` FROM grievance WHERE ticket_no = $1`, ticketNo)
	g, err := scanGrievance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Grievance{}, ErrGrievanceNotFound
	}
	return g, err
}

func (r *PostgresGrievanceRepository) ListGrievances(ctx context.Context, params ListGrievancesParams) ([]Grievance, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+grievanceColumns+` FROM grievance
		 WHERE ($1 = '00000000-0000-0000-0000-000000000000'::uuid OR employee_id = $1)
		   AND ($2 = '' OR status = $2)
		 ORDER BY raised_on DESC
		 LIMIT $3 OFFSET $4`,
		params.EmployeeID, string(params.Status), limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grievances := []Grievance{}
	for rows.Next() {
		g, err := scanGrievance(rows)
		if err != nil {
			return nil, err
		}
		grievances = append(grievances, g)
	}
	return grievances, rows.Err()
}

func (r *PostgresGrievanceRepository) CreateGrievance(ctx context.Context, g Grievance) (Grievance, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO grievance (id, ticket_no, employee_id, category, description,
			level, status, raised_on, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+grievanceColumns,
		g.ID, g.TicketNo, g.EmployeeID, g.Category, g.Description,
		g.Level, g.Status, time.Now().UTC())
	return scanGrievance(row)
}

func (r *PostgresGrievanceRepository) SetLevel(ctx context.Context, ticketNo string, level int, status Status) (Grievance, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE grievance SET level = $2, status = $3, updated_at = $4
		 WHERE ticket_no = $1
		 RETURNING `+grievanceColumns,
		ticketNo, level, status, time.Now().UTC())
	g, err := scanGrievance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Grievance{}, ErrGrievanceNotFound
	}
	return g, err
}

func (r *PostgresGrievanceRepository) SetResolution(ctx context.Context, ticketNo string, resolution string, status Status) (Grievance, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE grievance SET resolution = $2, status = $3, updated_at = $4
		 WHERE ticket_no = $1
		 RETURNING `+grievanceColumns,
		ticketNo, resolution, status, time.Now().UTC())
	g, err := scanGrievance(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Grievance{}, ErrGrievanceNotFound
	}
	return g, err
}

func (r *PostgresGrievanceRepository) ListOwners(ctx context.Context, level int) ([]Owner, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, level, email FROM grievance_owner WHERE level = $1 ORDER BY email`, level)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []Owner{}
	for rows.Next() {
		var o Owner
		if err := rows.Scan(&o.ID, &o.Level, &o.Email); err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func (r *PostgresGrievanceRepository) AddOwner(ctx context.Context, level int, email string) (Owner, error) {
	var o Owner
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grievance_owner (id, level, email) VALUES ($1, $2, $3)
		 RETURNING id, level, email`,
		uuid.New(), level, email).Scan(&o.ID, &o.Level, &o.Email)
	return o, err
}
