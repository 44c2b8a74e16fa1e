package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-hrms/pkg/notify"
)

type recordingNotifier struct {
	applied []uuid.UUID
	decided []uuid.UUID
}

func (n *recordingNotifier) NotifyLeaveApplied(ctx context.Context, leaveID uuid.UUID) (notify.Result, error) {
	n.applied = append(n.applied, leaveID)
	return notify.Result{Sent: 1}, nil
}

func (n *recordingNotifier) NotifyLeaveStatus(ctx context.Context, leaveID uuid.UUID) (notify.Result, error) {
	n.decided = append(n.decided, leaveID)
	return notify.Result{Sent: 1}, nil
}

func TestApplyLeave(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewLeaveService(NewInMemoryLeaveRepository(), notifier)

	created, err := svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  TypeSick,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Reason:     "Flu",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, 3, created.Days)

	require.Len(t, notifier.applied, 1)
	assert.Equal(t, created.ID, notifier.applied[0])
	assert.Empty(t, notifier.decided)
}

func TestApplyLeaveSingleDay(t *testing.T) {
	svc := NewLeaveService(NewInMemoryLeaveRepository(), nil)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  TypeCasual,
		StartDate:  day,
		EndDate:    day,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Days)
}

func TestApplyLeaveValidation(t *testing.T) {
	svc := NewLeaveService(NewInMemoryLeaveRepository(), nil)

	_, err := svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  "sabbatical",
		StartDate:  time.Now(),
		EndDate:    time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidLeaveType)

	_, err = svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  TypeCasual,
		StartDate:  time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestApproveLeave(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewLeaveService(NewInMemoryLeaveRepository(), notifier)

	created, err := svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  TypeEarned,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	approved, err := svc.ApproveLeave(context.Background(), created.ID, "Enjoy")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.Equal(t, "Enjoy", approved.ApproverComment)

	require.Len(t, notifier.decided, 1)
	assert.Equal(t, created.ID, notifier.decided[0])
}

func TestDecideLeaveOnlyOnce(t *testing.T) {
	svc := NewLeaveService(NewInMemoryLeaveRepository(), nil)

	created, err := svc.ApplyLeave(context.Background(), ApplyLeaveParams{
		EmployeeID: uuid.New(),
		LeaveType:  TypeCasual,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = svc.RejectLeave(context.Background(), created.ID, "Short staffed")
	require.NoError(t, err)

	_, err = svc.ApproveLeave(context.Background(), created.ID, "Changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestDecideLeaveNotFound(t *testing.T) {
	svc := NewLeaveService(NewInMemoryLeaveRepository(), nil)

	_, err := svc.ApproveLeave(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrLeaveNotFound)
}
