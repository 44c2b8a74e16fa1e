package kpi

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryKPIRepository implements KPIRepository in memory for
// development and testing.
type InMemoryKPIRepository struct {
	mu       sync.RWMutex
	plans    map[uuid.UUID]Plan
	feedback map[uuid.UUID]FeedbackRequest
}

func NewInMemoryKPIRepository() *InMemoryKPIRepository {
	return &InMemoryKPIRepository{
		plans:    map[uuid.UUID]Plan{},
		feedback: map[uuid.UUID]FeedbackRequest{},
	}
}

func (r *InMemoryKPIRepository) GetPlan(ctx context.Context, id uuid.UUID) (Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (r *InMemoryKPIRepository) ListPlans(ctx context.Context, employeeID uuid.UUID) ([]Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := []Plan{}
	for _, p := range r.plans {
		if employeeID != uuid.Nil && p.EmployeeID != employeeID {
			continue
		}
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
	return plans, nil
}

func (r *InMemoryKPIRepository) CreatePlan(ctx context.Context, params CreatePlanParams) (Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := Plan{
		ID:         uuid.New(),
		EmployeeID: params.EmployeeID,
		PlanName:   params.PlanName,
		Period:     params.Period,
		Status:     PlanStatusInProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.plans[p.ID] = p
	return p, nil
}

func (r *InMemoryKPIRepository) CompletePlan(ctx context.Context, id uuid.UUID, rating string) (Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	now := time.Now().UTC()
	p.Status = PlanStatusComplete
	p.Rating = rating
	p.CompletedOn = &now
	p.UpdatedAt = now
	r.plans[id] = p
	return p, nil
}

func (r *InMemoryKPIRepository) GetFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.feedback[id]
	if !ok {
		return FeedbackRequest{}, ErrFeedbackNotFound
	}
	return f, nil
}

func (r *InMemoryKPIRepository) CreateFeedback(ctx context.Context, params RequestFeedbackParams) (FeedbackRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	f := FeedbackRequest{
		ID:         uuid.New(),
		EmployeeID: params.EmployeeID,
		Topic:      params.Topic,
		DueDate:    params.DueDate,
		Status:     FeedbackStatusRequested,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.feedback[f.ID] = f
	return f, nil
}

func (r *InMemoryKPIRepository) CompleteFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.feedback[id]
	if !ok {
		return FeedbackRequest{}, ErrFeedbackNotFound
	}
	f.Status = FeedbackStatusCompleted
	f.UpdatedAt = time.Now().UTC()
	r.feedback[id] = f
	return f, nil
}
