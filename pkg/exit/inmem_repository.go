package exit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryResignationRepository implements ResignationRepository in
// memory for development and testing.
type InMemoryResignationRepository struct {
	mu           sync.RWMutex
	resignations map[uuid.UUID]Resignation
}

func NewInMemoryResignationRepository() *InMemoryResignationRepository {
	return &InMemoryResignationRepository{
		resignations: map[uuid.UUID]Resignation{},
	}
}

func (r *InMemoryResignationRepository) GetResignation(ctx context.Context, id uuid.UUID) (Resignation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.resignations[id]
	if !ok {
		return Resignation{}, ErrResignationNotFound
	}
	return res, nil
}

func (r *InMemoryResignationRepository) ListResignations(ctx context.Context, params ListResignationsParams) ([]Resignation, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Resignation{}
	for _, res := range r.resignations {
		if params.EmployeeID != uuid.Nil && res.EmployeeID != params.EmployeeID {
			continue
		}
		if params.Status != "" && res.Status != params.Status {
			continue
		}
		matched = append(matched, res)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := int(params.Offset)
	if start > len(matched) {
		start = len(matched)
	}
	end := start + int(limit)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *InMemoryResignationRepository) CreateResignation(ctx context.Context, res Resignation) (Resignation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	r.resignations[res.ID] = res
	return res, nil
}

func (r *InMemoryResignationRepository) SetStatus(ctx context.Context, id uuid.UUID, status Status, lastWorkingDay *time.Time) (Resignation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.resignations[id]
	if !ok {
		return Resignation{}, ErrResignationNotFound
	}
	res.Status = status
	if lastWorkingDay != nil {
		res.LastWorkingDay = lastWorkingDay
	}
	res.UpdatedAt = time.Now().UTC()
	r.resignations[id] = res
	return res, nil
}

func (r *InMemoryResignationRepository) SetClearance(ctx context.Context, id uuid.UUID, noDueGranted, fnfSettled bool) (Resignation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.resignations[id]
	if !ok {
		return Resignation{}, ErrResignationNotFound
	}
	res.NoDueGranted = noDueGranted
	res.FnFSettled = fnfSettled
	res.UpdatedAt = time.Now().UTC()
	r.resignations[id] = res
	return res, nil
}
