package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-hrms/pkg/notify"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMissingName      = errors.New("first name and last name are required")
	ErrMissingEmail     = errors.New("at least one of personal email or work email is required")
	ErrMissingDates     = errors.New("date of birth and joining date are required")
)

// Notifier is the slice of the notification composer the employee
// service uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyWelcome(ctx context.Context, employeeID uuid.UUID) (notify.Result, error)
}

type EmployeeService struct {
	repo     EmployeeRepository
	notifier Notifier
}

func NewEmployeeService(repo EmployeeRepository, notifier Notifier) *EmployeeService {
	return &EmployeeService{repo: repo, notifier: notifier}
}

// CreateEmployee onboards an employee and fires the welcome notification.
func (s *EmployeeService) CreateEmployee(ctx context.Context, params CreateEmployeeParams) (Employee, error) {
	if params.FirstName == "" || params.LastName == "" {
		return Employee{}, ErrMissingName
	}
	if params.PersonalEmail == "" && params.WorkEmail == "" {
		return Employee{}, ErrMissingEmail
	}
	if params.DateOfBirth.IsZero() || params.JoiningDate.IsZero() {
		return Employee{}, ErrMissingDates
	}

	created, err := s.repo.CreateEmployee(ctx, params)
	if err != nil {
		return Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyWelcome(ctx, created.ID); err != nil {
			slog.Error("Failed to send welcome notification", "employeeID", created.ID, "err", err)
		}
	}
	return created, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

func (s *EmployeeService) ListEmployees(ctx context.Context, params ListEmployeesParams) ([]Employee, int64, error) {
	employees, err := s.repo.ListEmployees(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	total, err := s.repo.CountEmployees(ctx, params.Search, params.Status)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return employees, total, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, params UpdateEmployeeParams) (Employee, error) {
	if params.PersonalEmail == "" && params.WorkEmail == "" {
		return Employee{}, ErrMissingEmail
	}
	return s.repo.UpdateEmployee(ctx, params)
}

// MarkExited flips an employee to the exited status so they drop out of
// celebration feeds and role broadcasts.
func (s *EmployeeService) MarkExited(ctx context.Context, id uuid.UUID, exitDate time.Time) error {
	if exitDate.IsZero() {
		exitDate = time.Now().UTC()
	}
	return s.repo.MarkExited(ctx, id, exitDate)
}
