// Package mailer delivers transactional email. The core only constructs
// message content; delivery goes through the Mailer interface so tests can
// substitute a mock and the reset flow never needs a live SMTP server.
package mailer

import "errors"

// Mail is a single outbound HTML message.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(mail Mail) error
}

// Disabled is a Mailer used when no SMTP credentials are configured.
// Every send fails, so flows that depend on delivery surface the problem
// instead of silently dropping mail.
type Disabled struct{}

func (Disabled) Send(Mail) error {
	return errors.New("mail delivery is not configured")
}
