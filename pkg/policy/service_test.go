package policy

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
	announced []uuid.UUID
}

func (n *recordingNotifier) NotifyNewPolicyAdded(ctx context.Context, policyID uuid.UUID) (notify.Result, error) {
	n.announced = append(n.announced, policyID)
	return notify.Result{Sent: 1}, nil
}

func TestCreatePolicy(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewPolicyService(NewInMemoryPolicyRepository(), notifier)

	created, err := svc.CreatePolicy(context.Background(), CreatePolicyParams{
		PolicyName:    "Remote Work Policy",
		DocumentName:  "remote-work-v2.pdf",
		EffectiveDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Remote Work Policy", created.PolicyName)

	require.Len(t, notifier.announced, 1)
	assert.Equal(t, created.ID, notifier.announced[0])
}

func TestCreatePolicyRequiresName(t *testing.T) {
	svc := NewPolicyService(NewInMemoryPolicyRepository(), nil)

	_, err := svc.CreatePolicy(context.Background(), CreatePolicyParams{DocumentName: "doc.pdf"})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestUpdatePolicyDoesNotRebroadcast(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewPolicyService(NewInMemoryPolicyRepository(), notifier)

	created, err := svc.CreatePolicy(context.Background(), CreatePolicyParams{
		PolicyName:    "Travel Policy",
		DocumentName:  "travel-v1.pdf",
		EffectiveDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, notifier.announced, 1)

	updated, err := svc.UpdatePolicy(context.Background(), UpdatePolicyParams{
		ID:            created.ID,
		PolicyName:    "Travel Policy",
		DocumentName:  "travel-v2.pdf",
		EffectiveDate: created.EffectiveDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "travel-v2.pdf", updated.DocumentName)
	assert.Len(t, notifier.announced, 1)

	_, err = svc.UpdatePolicy(context.Background(), UpdatePolicyParams{
		ID:         uuid.New(),
		PolicyName: "Missing",
	})
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestListPoliciesNewestFirst(t *testing.T) {
	svc := NewPolicyService(NewInMemoryPolicyRepository(), nil)

	_, err := svc.CreatePolicy(context.Background(), CreatePolicyParams{
		PolicyName:    "Old Policy",
		EffectiveDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = svc.CreatePolicy(context.Background(), CreatePolicyParams{
		PolicyName:    "New Policy",
		EffectiveDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	policies, err := svc.ListPolicies(context.Background())
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "New Policy", policies[0].PolicyName)
}
