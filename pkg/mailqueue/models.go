package mailqueue

import (
	"time"

	"github.com/google/uuid"
)

// QueuedNotification is a fully rendered message parked for later
// delivery. Substitution happens before enqueue; the drainer only splits
// the address lists and hands the message to the mailer.
type QueuedNotification struct {
	ID        uuid.UUID  `json:"id"`
	ToEmails  string     `json:"to_emails"`
	CCEmails  string     `json:"cc_emails"`
	BCCEmails string     `json:"bcc_emails"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	IsSent    bool       `json:"is_sent"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
}

type EnqueueParams struct {
	ToEmails  string
	CCEmails  string
	BCCEmails string
	Subject   string
	Body      string
}
