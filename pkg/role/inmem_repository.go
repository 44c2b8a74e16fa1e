package role

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRoleRepository implements RoleRepository in memory for
// development and testing. Membership email lookups resolve through the
// Emails map keyed by employee id.
type InMemoryRoleRepository struct {
	mu      sync.RWMutex
	roles   map[uuid.UUID]Role
	members map[uuid.UUID]map[uuid.UUID]bool // roleID -> employeeIDs
	Emails  map[uuid.UUID]string             // employeeID -> work email
}

func NewInMemoryRoleRepository() *InMemoryRoleRepository {
	return &InMemoryRoleRepository{
		roles:   map[uuid.UUID]Role{},
		members: map[uuid.UUID]map[uuid.UUID]bool{},
		Emails:  map[uuid.UUID]string{},
	}
}

func (r *InMemoryRoleRepository) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.roles[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	return role, nil
}

func (r *InMemoryRoleRepository) FindRoles(ctx context.Context) ([]Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := []Role{}
	for _, role := range r.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (r *InMemoryRoleRepository) CreateRole(ctx context.Context, params CreateRoleParams) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role := Role{
		ID:          uuid.New(),
		Name:        params.Name,
		Description: params.Description,
		CreatedAt:   time.Now().UTC(),
	}
	r.roles[role.ID] = role
	return role, nil
}

func (r *InMemoryRoleRepository) UpdateRole(ctx context.Context, id uuid.UUID, name, description string) (Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role, ok := r.roles[id]
	if !ok {
		return Role{}, ErrRoleNotFound
	}
	role.Name = name
	role.Description = description
	r.roles[id] = role
	return role, nil
}

func (r *InMemoryRoleRepository) DeleteRole(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.roles[id]; !ok {
		return ErrRoleNotFound
	}
	delete(r.roles, id)
	delete(r.members, id)
	return nil
}

func (r *InMemoryRoleRepository) AssignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.members[roleID] == nil {
		r.members[roleID] = map[uuid.UUID]bool{}
	}
	r.members[roleID][employeeID] = true
	return nil
}

func (r *InMemoryRoleRepository) UnassignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members[roleID], employeeID)
	return nil
}

func (r *InMemoryRoleRepository) EmailsByRole(ctx context.Context, name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var roleID uuid.UUID
	found := false
	for id, role := range r.roles {
		if role.Name == name {
			roleID = id
			found = true
			break
		}
	}
	if !found {
		return []string{}, nil
	}

	emails := []string{}
	for employeeID := range r.members[roleID] {
		if email, ok := r.Emails[employeeID]; ok && email != "" {
			emails = append(emails, email)
		}
	}
	sort.Strings(emails)
	return emails, nil
}
