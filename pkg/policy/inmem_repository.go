package policy

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryPolicyRepository implements PolicyRepository in memory for
// development and testing.
type InMemoryPolicyRepository struct {
	mu       sync.RWMutex
	policies map[uuid.UUID]Policy
}

func NewInMemoryPolicyRepository() *InMemoryPolicyRepository {
	return &InMemoryPolicyRepository{
		policies: map[uuid.UUID]Policy{},
	}
}

func (r *InMemoryPolicyRepository) GetPolicy(ctx context.Context, id uuid.UUID) (Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[id]
	if !ok {
		return Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (r *InMemoryPolicyRepository) ListPolicies(ctx context.Context) ([]Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policies := []Policy{}
	for _, p := range r.policies {
		policies = append(policies, p)
	}
	sort.Slice(policies, func(i, j int) bool {
		return policies[i].EffectiveDate.After(policies[j].EffectiveDate)
	})
	return policies, nil
}

func (r *InMemoryPolicyRepository) CreatePolicy(ctx context.Context, params CreatePolicyParams) (Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Policy{
		ID:            uuid.New(),
		PolicyName:    params.PolicyName,
		DocumentName:  params.DocumentName,
		Description:   params.Description,
		EffectiveDate: params.EffectiveDate,
		CreatedAt:     time.Now().UTC(),
	}
	r.policies[p.ID] = p
	return p, nil
}

func (r *InMemoryPolicyRepository) UpdatePolicy(ctx context.Context, params UpdatePolicyParams) (Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.policies[params.ID]
	if !ok {
		return Policy{}, ErrPolicyNotFound
	}
	p.PolicyName = params.PolicyName
	p.DocumentName = params.DocumentName
	p.Description = params.Description
	p.EffectiveDate = params.EffectiveDate
	r.policies[p.ID] = p
	return p, nil
}
