package mailqueue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-hrms/pkg/notification"
)

func TestQueueMailerEnqueuesInsteadOfSending(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	queueMailer := NewQueueMailer(repo)

	err := queueMailer.SendEmail(context.Background(), notification.EmailRequest{
		To:      []string{"asha@example.com", "manager@example.com"},
		CC:      []string{"hr@example.com"},
		Subject: "Leave Request Update",
		Body:    "Your leave is approved.",
	})
	require.NoError(t, err)

	pending, err := repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "asha@example.com; manager@example.com", pending[0].ToEmails)
	assert.Equal(t, "hr@example.com", pending[0].CCEmails)
	assert.Equal(t, "Leave Request Update", pending[0].Subject)
	assert.False(t, pending[0].IsSent)
}

func TestQueueMailerThenDrainerDelivers(t *testing.T) {
	repo := NewInMemoryQueueRepository()
	queueMailer := NewQueueMailer(repo)
	smtp := &notification.MockMailer{}

	err := queueMailer.SendEmail(context.Background(), notification.EmailRequest{
		To:      []string{"asha@example.com"},
		Subject: "Welcome Aboard",
		Body:    "Hello Asha",
	})
	require.NoError(t, err)

	drainer := NewDrainer(repo, smtp, notification.SenderIdentity{
		FromEmail: "hr@example.com",
		FromName:  "HR Team",
	})
	stats, err := drainer.DrainPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DrainStats{Sent: 1}, stats)

	require.Len(t, smtp.SentRequests, 1)
	assert.Equal(t, []string{"asha@example.com"}, smtp.SentRequests[0].To)
	assert.Equal(t, "hr@example.com", smtp.SentRequests[0].FromEmail)

	pending, err := repo.GetPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
