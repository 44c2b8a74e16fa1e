package employee

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryEmployeeRepository implements EmployeeRepository in memory for
// development and testing.
type InMemoryEmployeeRepository struct {
	mu        sync.RWMutex
	employees map[uuid.UUID]Employee
}

func NewInMemoryEmployeeRepository() *InMemoryEmployeeRepository {
	return &InMemoryEmployeeRepository{
		employees: map[uuid.UUID]Employee{},
	}
}

func (r *InMemoryEmployeeRepository) GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (r *InMemoryEmployeeRepository) ListEmployees(ctx context.Context, params ListEmployeesParams) ([]Employee, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Employee{}
	for _, e := range r.employees {
		if matchesEmployee(e, params.Search, params.Status) {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].FirstName != matched[j].FirstName {
			return matched[i].FirstName < matched[j].FirstName
		}
		return matched[i].LastName < matched[j].LastName
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

func (r *InMemoryEmployeeRepository) CountEmployees(ctx context.Context, search string, status Status) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, e := range r.employees {
		if matchesEmployee(e, search, status) {
			count++
		}
	}
	return count, nil
}

func matchesEmployee(e Employee, search string, status Status) bool {
	if status != "" && e.Status != status {
		return false
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.FirstName), search) ||
		strings.Contains(strings.ToLower(e.LastName), search) ||
		strings.Contains(strings.ToLower(e.WorkEmail), search) ||
		strings.Contains(strings.ToLower(e.Department), search)
}

func (r *InMemoryEmployeeRepository) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	e := Employee{
		ID:                    uuid.New(),
		FirstName:             params.FirstName,
		LastName:              params.LastName,
		Department:            params.Department,
		Designation:           params.Designation,
		DateOfBirth:           params.DateOfBirth,
		JoiningDate:           params.JoiningDate,
		PersonalEmail:         params.PersonalEmail,
		WorkEmail:             params.WorkEmail,
		ReportingManagerEmail: params.ReportingManagerEmail,
		Status:                StatusActive,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	r.employees[e.ID] = e
	return e, nil
}

func (r *InMemoryEmployeeRepository) UpdateEmployee(ctx context.Context, params UpdateEmployeeParams) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[params.ID]
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	e.Department = params.Department
	e.Designation = params.Designation
	e.PersonalEmail = params.PersonalEmail
	e.WorkEmail = params.WorkEmail
	e.ReportingManagerEmail = params.ReportingManagerEmail
	e.UpdatedAt = time.Now().UTC()
	r.employees[e.ID] = e
	return e, nil
}

func (r *InMemoryEmployeeRepository) MarkExited(ctx context.Context, id uuid.UUID, exitDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.employees[id]
	if !ok {
		return ErrEmployeeNotFound
	}
	e.Status = StatusExited
	e.ExitDate = &exitDate
	e.UpdatedAt = time.Now().UTC()
	r.employees[id] = e
	return nil
}
