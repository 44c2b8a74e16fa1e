package role

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository defines the interface for role storage and membership.
type RoleRepository interface {
	GetRole(ctx context.Context, id uuid.UUID) (Role, error)
	FindRoles(ctx context.Context) ([]Role, error)
	CreateRole(ctx context.Context, params CreateRoleParams) (Role, error)
	UpdateRole(ctx context.Context, id uuid.UUID, name, description string) (Role, error)
	DeleteRole(ctx context.Context, id uuid.UUID) error
	AssignRole(ctx context.Context, roleID, employeeID uuid.UUID) error
	UnassignRole(ctx context.Context, roleID, employeeID uuid.UUID) error
	EmailsByRole(ctx context.Context, name string) ([]string, error)
}

// PostgresRoleRepository implements RoleRepository using PostgreSQL.
type PostgresRoleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRoleRepository(pool *pgxpool.Pool) *PostgresRoleRepository {
	return &PostgresRoleRepository{pool: pool}
}

const roleColumns = `id, name, COALESCE(description, ''), created_at`

func scanRole(row pgx.Row) (Role, error) {
	var r Role
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.CreatedAt)
	return r, err
}

func (r *PostgresRoleRepository) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+roleColumns+` FROM hr_role WHERE id = $1`, id)
	role, err := scanRole(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Role{}, ErrRoleNotFound
	}
	return role, err
}

func (r *PostgresRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+roleColumns+` FROM hr_role ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *PostgresRoleRepository) CreateRole(ctx context.Context, params CreateRoleParams) (Role, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO hr_role (id, name, description, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+roleColumns,
		uuid.New(), params.Name, params.Description, time.Now().UTC())
	return scanRole(row)
}

func (r *PostgresRoleRepository) UpdateRole(ctx context.Context, id uuid.UUID, name, description string) (Role, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE hr_role SET name = $2, description = $3 WHERE id = $1
		 RETURNING `+roleColumns,
		id, name, description)
	role, err := scanRole(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Role{}, ErrRoleNotFound
	}
	return role, err
}

func (r *PostgresRoleRepository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hr_role WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *PostgresRoleRepository) AssignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO employee_role (employee_id, role_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, employeeID, roleID)
	return err
}

func (r *PostgresRoleRepository) UnassignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM employee_role WHERE employee_id = $1 AND role_id = $2`,
		employeeID, roleID)
	return err
}

// EmailsByRole returns the work addresses of active employees holding the
// named role.
func (r *PostgresRoleRepository) EmailsByRole(ctx context.Context, name string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.work_email
		 FROM employee e
		 JOIN employee_role er ON er.employee_id = e.id
		 JOIN hr_role hr ON hr.id = er.role_id
		 WHERE e.status = 'active' AND hr.name = $1
		 ORDER BY e.work_email`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
