package notification

import "context"

// SenderIdentity is the From identity stamped on outbound mail. It is
// injected into the composer at construction so compose methods never
// read ambient configuration.
type SenderIdentity struct {
	FromEmail string
	FromName  string
}

// EmailRequest is a fully rendered outbound message. It is built fresh
// per send and never persisted.
type EmailRequest struct {
	To        []string
	CC        []string
	BCC       []string
	FromEmail string
	FromName  string
	Subject   string
	Body      string // HTML or plain text, opaque to the pipeline
}

// Mailer delivers a composed message. A nil error means the provider
// accepted the message.
type Mailer interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}
