package kpi

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
	completed []uuid.UUID
	requested []uuid.UUID
	thanked   []uuid.UUID
}

func (n *recordingNotifier) NotifyKPIComplete(ctx context.Context, planID uuid.UUID) (notify.Result, error) {
	n.completed = append(n.completed, planID)
	return notify.Result{Sent: 1}, nil
}

func (n *recordingNotifier) NotifyFeedbackRequested(ctx context.Context, feedbackID uuid.UUID) (notify.Result, error) {
	n.requested = append(n.requested, feedbackID)
	return notify.Result{Sent: 1}, nil
}

func (n *recordingNotifier) NotifyFeedbackCompleted(ctx context.Context, feedbackID uuid.UUID) (notify.Result, error) {
	n.thanked = append(n.thanked, feedbackID)
	return notify.Result{Sent: 1}, nil
}

func TestCompletePlan(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewKPIService(NewInMemoryKPIRepository(), notifier)

	created, err := svc.CreatePlan(context.Background(), CreatePlanParams{
		EmployeeID: uuid.New(),
		PlanName:   "FY26 Goals",
		Period:     "FY26",
	})
	require.NoError(t, err)
	assert.Equal(t, PlanStatusInProgress, created.Status)

	completed, err := svc.CompletePlan(context.Background(), created.ID, "Exceeds Expectations")
	require.NoError(t, err)
	assert.Equal(t, PlanStatusComplete, completed.Status)
	assert.Equal(t, "Exceeds Expectations", completed.Rating)
	require.NotNil(t, completed.CompletedOn)

	require.Len(t, notifier.completed, 1)
	assert.Equal(t, created.ID, notifier.completed[0])

	_, err = svc.CompletePlan(context.Background(), created.ID, "again")
	assert.ErrorIs(t, err, ErrPlanComplete)
}

func TestCreatePlanRequiresName(t *testing.T) {
	svc := NewKPIService(NewInMemoryKPIRepository(), nil)

	_, err := svc.CreatePlan(context.Background(), CreatePlanParams{EmployeeID: uuid.New()})
	assert.ErrorIs(t, err, ErrMissingPlanName)
}

func TestFeedbackLifecycle(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewKPIService(NewInMemoryKPIRepository(), notifier)

	_, err := svc.RequestFeedback(context.Background(), RequestFeedbackParams{EmployeeID: uuid.New()})
	assert.ErrorIs(t, err, ErrMissingTopic)

	created, err := svc.RequestFeedback(context.Background(), RequestFeedbackParams{
		EmployeeID: uuid.New(),
		Topic:      "Manager effectiveness",
		DueDate:    time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, FeedbackStatusRequested, created.Status)
	require.Len(t, notifier.requested, 1)

	completed, err := svc.CompleteFeedback(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, FeedbackStatusCompleted, completed.Status)
	require.Len(t, notifier.thanked, 1)

	_, err = svc.CompleteFeedback(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrFeedbackComplete)
}
