package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tendant/simple-hrms/pkg/notify"
)

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrAlreadyDecided   = errors.New("leave request already decided")
)

// Notifier is the slice of the notification composer the leave service
// uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyLeaveApplied(ctx context.Context, leaveID uuid.UUID) (notify.Result, error)
	NotifyLeaveStatus(ctx context.Context, leaveID uuid.UUID) (notify.Result, error)
}

type LeaveService struct {
	repo     LeaveRepository
	notifier Notifier
}

func NewLeaveService(repo LeaveRepository, notifier Notifier) *LeaveService {
	return &LeaveService{repo: repo, notifier: notifier}
}

// ApplyLeave records a leave request and alerts the reporting manager.
// Days are counted inclusive of both endpoints.
func (s *LeaveService) ApplyLeave(ctx context.Context, params ApplyLeaveParams) (LeaveRequest, error) {
	if !params.LeaveType.IsValid() {
		return LeaveRequest{}, ErrInvalidLeaveType
	}
	if params.EndDate.Before(params.StartDate) {
		return LeaveRequest{}, ErrInvalidDateRange
	}

	days := int(params.EndDate.Sub(params.StartDate).Hours()/24) + 1
	created, err := s.repo.CreateLeave(ctx, LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: params.EmployeeID,
		LeaveType:  params.LeaveType,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		Days:       days,
		Reason:     params.Reason,
		Status:     StatusPending,
	})
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyLeaveApplied(ctx, created.ID); err != nil {
			slog.Error("Failed to send leave applied notification", "leaveID", created.ID, "err", err)
		}
	}
	return created, nil
}

// ApproveLeave approves a pending request and informs the employee.
func (s *LeaveService) ApproveLeave(ctx context.Context, id uuid.UUID, comment string) (LeaveRequest, error) {
	return s.decide(ctx, id, StatusApproved, comment)
}

// RejectLeave rejects a pending request and informs the employee.
func (s *LeaveService) RejectLeave(ctx context.Context, id uuid.UUID, comment string) (LeaveRequest, error) {
	return s.decide(ctx, id, StatusRejected, comment)
}

func (s *LeaveService) decide(ctx context.Context, id uuid.UUID, status Status, comment string) (LeaveRequest, error) {
	existing, err := s.repo.GetLeave(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if existing.Status != StatusPending {
		return LeaveRequest{}, ErrAlreadyDecided
	}

	decided, err := s.repo.SetStatus(ctx, id, status, comment)
	if err != nil {
		return LeaveRequest{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyLeaveStatus(ctx, decided.ID); err != nil {
			slog.Error("Failed to send leave status notification", "leaveID", decided.ID, "err", err)
		}
	}
	return decided, nil
}

func (s *LeaveService) GetLeave(ctx context.Context, id uuid.UUID) (LeaveRequest, error) {
	return s.repo.GetLeave(ctx, id)
}

func (s *LeaveService) ListLeaves(ctx context.Context, params ListLeavesParams) ([]LeaveRequest, error) {
	return s.repo.ListLeaves(ctx, params)
}
