package exit

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
	ErrResignationNotFound   = errors.New("resignation not found")
	ErrAlreadyDecided        = errors.New("resignation already decided")
	ErrMissingLastWorkingDay = errors.New("last working day is required for approval")
	ErrNotApproved           = errors.New("resignation is not approved")
)

// Notifier is the slice of the notification composer the exit service
// uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyResignationApplied(ctx context.Context, resignationID uuid.UUID) (notify.Result, error)
	NotifyResignationApproved(ctx context.Context, resignationID uuid.UUID) (notify.Result, error)
	NotifyResignationRejected(ctx context.Context, resignationID uuid.UUID) (notify.Result, error)
}

// EmployeeStore lets the exit service flip an employee to exited once the
// settlement completes.
type EmployeeStore interface {
	MarkExited(ctx context.Context, id uuid.UUID, exitDate time.Time) error
}

type ExitService struct {
	repo      ResignationRepository
	employees EmployeeStore
	notifier  Notifier
}

func NewExitService(repo ResignationRepository, employees EmployeeStore, notifier Notifier) *ExitService {
	return &ExitService{repo: repo, employees: employees, notifier: notifier}
}

// ApplyResignation records a resignation request and informs the employee
// and their manager.
func (s *ExitService) ApplyResignation(ctx context.Context, params ApplyResignationParams) (Resignation, error) {
	date := params.ResignationDate
	if date.IsZero() {
		date = time.Now().UTC()
	}

	created, err := s.repo.CreateResignation(ctx, Resignation{
		ID:              uuid.New(),
		EmployeeID:      params.EmployeeID,
		ResignationDate: date,
		Reason:          params.Reason,
		Status:          StatusApplied,
	})
	if err != nil {
		return Resignation{}, fmt.Errorf("failed to create resignation: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyResignationApplied(ctx, created.ID); err != nil {
			slog.Error("Failed to send resignation applied notification", "resignationID", created.ID, "err", err)
		}
	}
	return created, nil
}

// ApproveResignation approves a pending resignation with the agreed last
// working day.
func (s *ExitService) ApproveResignation(ctx context.Context, id uuid.UUID, lastWorkingDay time.Time) (Resignation, error) {
	if lastWorkingDay.IsZero() {
		return Resignation{}, ErrMissingLastWorkingDay
	}

	existing, err := s.repo.GetResignation(ctx, id)
	if err != nil {
		return Resignation{}, err
	}
	if existing.Status != StatusApplied {
		return Resignation{}, ErrAlreadyDecided
	}

	approved, err := s.repo.SetStatus(ctx, id, StatusApproved, &lastWorkingDay)
	if err != nil {
		return Resignation{}, fmt.Errorf("failed to approve resignation: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyResignationApproved(ctx, id); err != nil {
			slog.Error("Failed to send resignation approved notification", "resignationID", id, "err", err)
		}
	}
	return approved, nil
}

// RejectResignation rejects a pending resignation.
func (s *ExitService) RejectResignation(ctx context.Context, id uuid.UUID) (Resignation, error) {
	existing, err := s.repo.GetResignation(ctx, id)
	if err != nil {
		return Resignation{}, err
	}
	if existing.Status != StatusApplied {
		return Resignation{}, ErrAlreadyDecided
	}

	rejected, err := s.repo.SetStatus(ctx, id, StatusRejected, nil)
	if err != nil {
		return Resignation{}, fmt.Errorf("failed to reject resignation: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyResignationRejected(ctx, id); err != nil {
			slog.Error("Failed to send resignation rejected notification", "resignationID", id, "err", err)
		}
	}
	return rejected, nil
}

// UpdateClearance records the no-due certificate and full-and-final
// settlement flags on an approved resignation. Once both clear, the
// resignation moves to settled and the employee is marked exited.
func (s *ExitService) UpdateClearance(ctx context.Context, id uuid.UUID, noDueGranted, fnfSettled bool) (Resignation, error) {
	existing, err := s.repo.GetResignation(ctx, id)
	if err != nil {
		return Resignation{}, err
	}
	if existing.Status != StatusApproved && existing.Status != StatusSettled {
		return Resignation{}, ErrNotApproved
	}

	updated, err := s.repo.SetClearance(ctx, id, noDueGranted, fnfSettled)
	if err != nil {
		return Resignation{}, fmt.Errorf("failed to update clearance: %w", err)
	}

	if updated.NoDueGranted && updated.FnFSettled && updated.Status != StatusSettled {
		updated, err = s.repo.SetStatus(ctx, id, StatusSettled, nil)
		if err != nil {
			return Resignation{}, fmt.Errorf("failed to settle resignation: %w", err)
		}
		exitDate := time.Now().UTC()
		if updated.LastWorkingDay != nil {
			exitDate = *updated.LastWorkingDay
		}
		if s.employees != nil {
			if err := s.employees.MarkExited(ctx, updated.EmployeeID, exitDate); err != nil {
				slog.Error("Failed to mark employee exited", "employeeID", updated.EmployeeID, "err", err)
			}
		}
	}
	return updated, nil
}

func (s *ExitService) GetResignation(ctx context.Context, id uuid.UUID) (Resignation, error) {
	return s.repo.GetResignation(ctx, id)
}

func (s *ExitService) ListResignations(ctx context.Context, params ListResignationsParams) ([]Resignation, error) {
	return s.repo.ListResignations(ctx, params)
}
