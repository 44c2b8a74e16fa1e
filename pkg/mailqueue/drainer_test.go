package mailqueue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-hrms/pkg/notification"
)

var testSender = notification.SenderIdentity{
	FromEmail: "hr@example.com",
	FromName:  "HR Team",
}

func TestDrainPendingDeliversAndMarks(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	mailer := &notification.MockMailer{}
	drainer := NewDrainer(repo, mailer, testSender)

	_, err := repo.Enqueue(context.Background(), EnqueueParams{
		ToEmails: "a@example.com;b@example.com",
		CCEmails: "c@example.com",
		Subject:  "Hello",
		Body:     "Body",
	})
	require.NoError(t, err)

	stats, err := drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{Sent: 1}, stats)

	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sent.To)
	assert.Equal(t, []string{"c@example.com"}, sent.CC)
	assert.Equal(t, "hr@example.com", sent.FromEmail)

	pending, err := repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDrainPendingFailureLeavesQueued(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	mailer := &notification.MockMailer{Errs: []error{errors.New("smtp unavailable")}}
	drainer := NewDrainer(repo, mailer, testSender)

	first, err := repo.Enqueue(context.Background(), EnqueueParams{
		ToEmails: "first@example.com", Subject: "First", Body: "b",
	})
	require.NoError(t, err)
	_, err = repo.Enqueue(context.Background(), EnqueueParams{
		ToEmails: "second@example.com", Subject: "Second", Body: "b",
	})
	require.NoError(t, err)

	stats, err := drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{Sent: 1, Failed: 1}, stats)

	pending, err := repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	// the failed message goes out on the next pass
	stats, err = drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{Sent: 1}, stats)

	pending, err = repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDrainPendingDiscardsEmptyRecipients(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	mailer := &notification.MockMailer{}
	drainer := NewDrainer(repo, mailer, testSender)

	_, err := repo.Enqueue(context.Background(), EnqueueParams{
		ToEmails: " ; ;", Subject: "Nobody", Body: "b",
	})
	require.NoError(t, err)

	stats, err := drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{Skipped: 1}, stats)
	assert.Zero(t, mailer.Attempts)

	pending, err := repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDrainPendingEmptyQueue(t *testing.T) {
	drainer := NewDrainer(NewInMemoryQueueRepository(), &notification.MockMailer{}, testSender)

	stats, err := drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{}, stats)
}

func TestDrainPendingCanceledContext(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	_, err := repo.Enqueue(context.Background(), EnqueueParams{
		ToEmails: "a@example.com", Subject: "s", Body: "b",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	drainer := NewDrainer(repo, &notification.MockMailer{}, testSender)
	_, err = drainer.DrainPending(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
