package mailqueue

import (
	"context"
	"fmt"
	"strings"

	"github.com/tendant/simple-hrms/pkg/notification"
)

// QueueMailer implements notification.Mailer by parking messages in the
// queue instead of delivering them. Pairing it with a Drainer makes the
// queue the single delivery path: composers enqueue, the drainer sends.
type QueueMailer struct {
	repo QueueRepository
}

func NewQueueMailer(repo QueueRepository) *QueueMailer {
	return &QueueMailer{repo: repo}
}

func (m *QueueMailer) SendEmail(ctx context.Context, req notification.EmailRequest) error {
	_, err := m.repo.Enqueue(ctx, EnqueueParams{
		ToEmails:  strings.Join(req.To, "; "),
		CCEmails:  strings.Join(req.CC, "; "),
		BCCEmails: strings.Join(req.BCC, "; "),
		Subject:   req.Subject,
		Body:      req.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}
