package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tendant/simple-hrms/pkg/notify"
)

var (
	ErrEmptyRoleName = errors.New("role name cannot be empty")
	ErrRoleNotFound  = errors.New("role not found")
)

// Notifier is the slice of the notification composer the role service
// uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyNewRoleAdded(ctx context.Context, roleID uuid.UUID) (notify.Result, error)
}

// RoleService provides methods for HR role management
type RoleService struct {
	repo     RoleRepository
	notifier Notifier
}

func NewRoleService(repo RoleRepository, notifier Notifier) *RoleService {
	return &RoleService{repo: repo, notifier: notifier}
}

func (s *RoleService) FindRoles(ctx context.Context) ([]Role, error) {
	return s.repo.FindRoles(ctx)
}

func (s *RoleService) GetRole(ctx context.Context, id uuid.UUID) (Role, error) {
	return s.repo.GetRole(ctx, id)
}

// CreateRole adds a new role and broadcasts the announcement
func (s *RoleService) CreateRole(ctx context.Context, params CreateRoleParams) (Role, error) {
	if strings.TrimSpace(params.Name) == "" {
		return Role{}, ErrEmptyRoleName
	}

	created, err := s.repo.CreateRole(ctx, params)
	if err != nil {
		return Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyNewRoleAdded(ctx, created.ID); err != nil {
			slog.Error("Failed to send new role notification", "roleID", created.ID, "err", err)
		}
	}
	return created, nil
}

// UpdateRole modifies an existing role
func (s *RoleService) UpdateRole(ctx context.Context, id uuid.UUID, name, description string) (Role, error) {
	if strings.TrimSpace(name) == "" {
		return Role{}, ErrEmptyRoleName
	}
	return s.repo.UpdateRole(ctx, id, name, description)
}

// DeleteRole removes a role and its memberships
func (s *RoleService) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRole(ctx, id)
}

func (s *RoleService) AssignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	if _, err := s.repo.GetRole(ctx, roleID); err != nil {
		return err
	}
	return s.repo.AssignRole(ctx, roleID, employeeID)
}

func (s *RoleService) UnassignRole(ctx context.Context, roleID, employeeID uuid.UUID) error {
	return s.repo.UnassignRole(ctx, roleID, employeeID)
}

// EmailsByRole returns the work addresses of active members of the named
// role.
func (s *RoleService) EmailsByRole(ctx context.Context, name string) ([]string, error) {
	return s.repo.EmailsByRole(ctx, name)
}
