package policy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PolicyRepository defines the interface for company policy storage.
type PolicyRepository interface {
	GetPolicy(ctx context.Context, id uuid.UUID) (Policy, error)
	ListPolicies(ctx context.Context) ([]Policy, error)
	CreatePolicy(ctx context.Context, params CreatePolicyParams) (Policy, error)
	UpdatePolicy(ctx context.Context, params UpdatePolicyParams) (Policy, error)
}

// PostgresPolicyRepository implements PolicyRepository using PostgreSQL.
type PostgresPolicyRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPolicyRepository(pool *pgxpool.Pool) *PostgresPolicyRepository {
	return &PostgresPolicyRepository{pool: pool}
}

const policyColumns = `id, policy_name, document_name, COALESCE(description, ''), effective_date, created_at`

func scanPolicy(row pgx.Row) (Policy, error) {
	var p Policy
	err := row.Scan(&p.ID, &p.PolicyName, &p.DocumentName, &p.Description, &p.EffectiveDate, &p.CreatedAt)
	return p, err
}

func (r *PostgresPolicyRepository) GetPolicy(ctx context.Context, id uuid.UUID) (Policy, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+policyColumns+` FROM company_policy WHERE id = $1`, id)
	p, err := scanPolicy(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Policy{}, ErrPolicyNotFound
	}
	return p, err
}

func (r *PostgresPolicyRepository) ListPolicies(ctx context.Context) ([]Policy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+policyColumns+` FROM company_policy ORDER BY effective_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []Policy{}
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func (r *PostgresPolicyRepository) CreatePolicy(ctx context.Context, params CreatePolicyParams) (Policy, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO company_policy (id, policy_name, document_name, description, effective_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+policyColumns,
		uuid.New(), params.PolicyName, params.DocumentName, params.Description,
		params.EffectiveDate, time.Now().UTC())
	return scanPolicy(row)
}

func (r *PostgresPolicyRepository) UpdatePolicy(ctx context.Context, params UpdatePolicyParams) (Policy, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE company_policy
		 SET policy_name = $2, document_name = $3, description = $4, effective_date = $5
		 WHERE id = $1
		 RETURNING `+policyColumns,
		params.ID, params.PolicyName, params.DocumentName, params.Description, params.EffectiveDate)
	p, err := scanPolicy(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Policy{}, ErrPolicyNotFound
	}
	return p, err
}
