package service

import "context"

// Mail is a single transactional message.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends transactional email (order confirmations, lead follow-ups).
type Mailer interface {
	// Send delivers the mail. Failures are surfaced to the caller; there is no
	// retry queue.
	Send(ctx context.Context, mail *Mail) error
}
