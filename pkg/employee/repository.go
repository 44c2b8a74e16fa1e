package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository defines the interface for employee store operations
type EmployeeRepository interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error)
	ListEmployees(ctx context.Context, params ListEmployeesParams) ([]Employee, error)
	CountEmployees(ctx context.Context, search string, status Status) (int64, error)
	CreateEmployee(ctx context.Context, params CreateEmployeeParams) (Employee, error)
	UpdateEmployee(ctx context.Context, params UpdateEmployeeParams) (Employee, error)
	MarkExited(ctx context.Context, id uuid.UUID, exitDate time.Time) error
}

// PostgresEmployeeRepository implements EmployeeRepository using PostgreSQL
type PostgresEmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEmployeeRepository(pool *pgxpool.Pool) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{pool: pool}
}

const employeeColumns = `id, first_name, last_name, department, designation,
	date_of_birth, joining_date, personal_email, work_email,
	reporting_manager_email, status, exit_date, created_at, updated_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Department, &e.Designation,
		&e.DateOfBirth, &e.JoiningDate, &e.PersonalEmail, &e.WorkEmail,
		&e.ReportingManagerEmail, &e.Status, &e.ExitDate, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *PostgresEmployeeRepository) GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employee WHERE id = $1`, id)
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, err
}

func (r *PostgresEmployeeRepository) ListEmployees(ctx context.Context, params ListEmployeesParams) ([]Employee, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employee
		 WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
			OR work_email ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)
		 ORDER BY first_name, last_name
		 LIMIT $3 OFFSET $4`,
		strings.TrimSpace(params.Search), string(params.Status), limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *PostgresEmployeeRepository) CountEmployees(ctx context.Context, search string, status Status) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employee
		 WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%'
			OR work_email ILIKE '%' || $1 || '%' OR department ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR status = $2)`,
		strings.TrimSpace(search), string(status)).Scan(&count)
	return count, err
}

func (r *PostgresEmployeeRepository) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (Employee, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO employee (id, first_name, last_name, department, designation,
			date_of_birth, joining_date, personal_email, work_email,
			reporting_manager_email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		 RETURNING `+employeeColumns,
		uuid.New(), params.FirstName, params.LastName, params.Department, params.Designation,
		params.DateOfBirth, params.JoiningDate, params.PersonalEmail, params.WorkEmail,
		params.ReportingManagerEmail, StatusActive, time.Now().UTC())
	return scanEmployee(row)
}

func (r *PostgresEmployeeRepository) UpdateEmployee(ctx context.Context, params UpdateEmployeeParams) (Employee, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE employee
		 SET department = $2, designation = $3, personal_email = $4,
			work_email = $5, reporting_manager_email = $6, updated_at = $7
		 WHERE id = $1
		 RETURNING `+employeeColumns,
		params.ID, params.Department, params.Designation, params.PersonalEmail,
		params.WorkEmail, params.ReportingManagerEmail, time.Now().UTC())
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, err
}

func (r *PostgresEmployeeRepository) MarkExited(ctx context.Context, id uuid.UUID, exitDate time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employee SET status = $2, exit_date = $3, updated_at = $4 WHERE id = $1`,
		id, StatusExited, exitDate, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
