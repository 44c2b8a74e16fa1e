package grievance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryGrievanceRepository implements GrievanceRepository in memory
// for development and testing.
type InMemoryGrievanceRepository struct {
	mu         sync.RWMutex
	grievances map[string]Grievance
	owners     []Owner
}

func NewInMemoryGrievanceRepository() *InMemoryGrievanceRepository {
	return &InMemoryGrievanceRepository{
		grievances: map[string]Grievance{},
	}
}

func (r *InMemoryGrievanceRepository) GetByTicketNo(ctx context.Context, ticketNo string) (Grievance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.grievances[ticketNo]
	if !ok {
		return Grievance{}, ErrGrievanceNotFound
	}
	return g, nil
}

func (r *InMemoryGrievanceRepository) ListGrievances(ctx context.Context, params ListGrievancesParams) ([]Grievance, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Grievance{}
	for _, g := range r.grievances {
		if params.EmployeeID != uuid.Nil && g.EmployeeID != params.EmployeeID {
			continue
		}
		if params.Status != "" && g.Status != params.Status {
			continue
		}
		matched = append(matched, g)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RaisedOn.After(matched[j].RaisedOn)
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

func (r *InMemoryGrievanceRepository) CreateGrievance(ctx context.Context, g Grievance) (Grievance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	g.RaisedOn = now
	g.UpdatedAt = now
	r.grievances[g.TicketNo] = g
	return g, nil
}

func (r *InMemoryGrievanceRepository) SetLevel(ctx context.Context, ticketNo string, level int, status Status) (Grievance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.grievances[ticketNo]
	if !ok {
		return Grievance{}, ErrGrievanceNotFound
	}
	g.Level = level
	g.Status = status
	g.UpdatedAt = time.Now().UTC()
	r.grievances[ticketNo] = g
	return g, nil
}

func (r *InMemoryGrievanceRepository) SetResolution(ctx context.Context, ticketNo string, resolution string, status Status) (Grievance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.grievances[ticketNo]
	if !ok {
		return Grievance{}, ErrGrievanceNotFound
	}
	g.Resolution = resolution
	g.Status = status
	g.UpdatedAt = time.Now().UTC()
	r.grievances[ticketNo] = g
	return g, nil
}

func (r *InMemoryGrievanceRepository) ListOwners(ctx context.Context, level int) ([]Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owners := []Owner{}
	for _, o := range r.owners {
		if o.Level == level {
			owners = append(owners, o)
		}
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].Email < owners[j].Email })
	return owners, nil
}

func (r *InMemoryGrievanceRepository) AddOwner(ctx context.Context, level int, email string) (Owner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := Owner{ID: uuid.New(), Level: level, Email: email}
	r.owners = append(r.owners, o)
	return o, nil
}
