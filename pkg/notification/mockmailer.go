package notification

import "context"

// MockMailer records sent messages for tests.
type MockMailer struct {
	SentRequests []EmailRequest // successful sends only
	Attempts     int
	// Errs is consumed front to back, one per SendEmail call; nil entries
	// and calls past the end of the slice succeed.
	Errs []error
}

func (m *MockMailer) SendEmail(ctx context.Context, req EmailRequest) error {
	m.Attempts++
	var err error
	if len(m.Errs) > 0 {
		err = m.Errs[0]
		m.Errs = m.Errs[1:]
	}
	if err != nil {
		return err
	}
	m.SentRequests = append(m.SentRequests, req)
	return nil
}
