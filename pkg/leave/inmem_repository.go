package leave

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryLeaveRepository implements LeaveRepository in memory for
// development and testing.
type InMemoryLeaveRepository struct {
	mu     sync.RWMutex
	leaves map[uuid.UUID]LeaveRequest
}

func NewInMemoryLeaveRepository() *InMemoryLeaveRepository {
	return &InMemoryLeaveRepository{
		leaves: map[uuid.UUID]LeaveRequest{},
	}
}

func (r *InMemoryLeaveRepository) GetLeave(ctx context.Context, id uuid.UUID) (LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.leaves[id]
	if !ok {
		return LeaveRequest{}, ErrLeaveNotFound
	}
	return l, nil
}

func (r *InMemoryLeaveRepository) ListLeaves(ctx context.Context, params ListLeavesParams) ([]LeaveRequest, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []LeaveRequest{}
	for _, l := range r.leaves {
		if params.EmployeeID != uuid.Nil && l.EmployeeID != params.EmployeeID {
			continue
		}
		if params.Status != "" && l.Status != params.Status {
			continue
		}
		matched = append(matched, l)
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

func (r *InMemoryLeaveRepository) CreateLeave(ctx context.Context, req LeaveRequest) (LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	r.leaves[req.ID] = req
	return req, nil
}

func (r *InMemoryLeaveRepository) SetStatus(ctx context.Context, id uuid.UUID, status Status, comment string) (LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.leaves[id]
	if !ok {
		return LeaveRequest{}, ErrLeaveNotFound
	}
	l.Status = status
	l.ApproverComment = comment
	l.UpdatedAt = time.Now().UTC()
	r.leaves[id] = l
	return l, nil
}
