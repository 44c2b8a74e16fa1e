package grievance

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-hrms/pkg/notify"
)

type recordingNotifier struct {
	raised    []string
	escalated []string
	resolved  []string
}

func (n *recordingNotifier) NotifyGrievanceRaised(ctx context.Context, ticketNo string) (notify.Result, error) {
	n.raised = append(n.raised, ticketNo)
	return notify.Result{Sent: 1}, nil
}

func (n *recordingNotifier) NotifyGrievanceEscalated(ctx context.Context, ticketNo string) (notify.Result, error) {
	n.escalated = append(n.escalated, ticketNo)
	return notify.Result{Sent: 1}, nil
}

func (n *recordingNotifier) NotifyGrievanceResolved(ctx context.Context, ticketNo string) (notify.Result, error) {
	n.resolved = append(n.resolved, ticketNo)
	return notify.Result{Sent: 1}, nil
}

func TestRaiseGrievance(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewGrievanceService(NewInMemoryGrievanceRepository(), notifier)

	created, err := svc.RaiseGrievance(context.Background(), RaiseGrievanceParams{
		EmployeeID:  uuid.New(),
		Category:    "Payroll",
		Description: "Incorrect deduction",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.TicketNo, "GRV-"))
	assert.Equal(t, MinLevel, created.Level)
	assert.Equal(t, StatusOpen, created.Status)

	require.Len(t, notifier.raised, 1)
	assert.Equal(t, created.TicketNo, notifier.raised[0])
}

func TestRaiseGrievanceRequiresCategory(t *testing.T) {
	svc := NewGrievanceService(NewInMemoryGrievanceRepository(), nil)

	_, err := svc.RaiseGrievance(context.Background(), RaiseGrievanceParams{
		EmployeeID: uuid.New(),
		Category:   "  ",
	})
	assert.ErrorIs(t, err, ErrMissingCategory)
}

func TestEscalateThroughLevels(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewGrievanceService(NewInMemoryGrievanceRepository(), notifier)

	created, err := svc.RaiseGrievance(context.Background(), RaiseGrievanceParams{
		EmployeeID: uuid.New(),
		Category:   "Workplace",
	})
	require.NoError(t, err)

	g, err := svc.Escalate(context.Background(), created.TicketNo)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Level)
	assert.Equal(t, StatusEscalated, g.Status)

	g, err = svc.Escalate(context.Background(), created.TicketNo)
	require.NoError(t, err)
	assert.Equal(t, MaxLevel, g.Level)

	_, err = svc.Escalate(context.Background(), created.TicketNo)
	assert.ErrorIs(t, err, ErrAtMaxLevel)

	assert.Len(t, notifier.escalated, 2)
}

func TestResolveGrievance(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewGrievanceService(NewInMemoryGrievanceRepository(), notifier)

	created, err := svc.RaiseGrievance(context.Background(), RaiseGrievanceParams{
		EmployeeID: uuid.New(),
		Category:   "Payroll",
	})
	require.NoError(t, err)

	resolved, err := svc.Resolve(context.Background(), created.TicketNo, "Deduction reversed")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, resolved.Status)
	assert.Equal(t, "Deduction reversed", resolved.Resolution)

	require.Len(t, notifier.resolved, 1)

	_, err = svc.Escalate(context.Background(), created.TicketNo)
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	_, err = svc.Resolve(context.Background(), created.TicketNo, "again")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestOwners(t *testing.T) {
	svc := NewGrievanceService(NewInMemoryGrievanceRepository(), nil)

	_, err := svc.AddOwner(context.Background(), 0, "x@example.com")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = svc.AddOwner(context.Background(), 1, " ")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.AddOwner(context.Background(), 1, "lead@example.com")
	require.NoError(t, err)
	_, err = svc.AddOwner(context.Background(), 2, "hrhead@example.com")
	require.NoError(t, err)

	owners, err := svc.ListOwners(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "lead@example.com", owners[0].Email)
}
