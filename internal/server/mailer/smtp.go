package mailer

import (
	"errors"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/mealgenie/backend/internal/server/config"
)

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) (*SMTPMailer, error) {
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("smtp credentials missing")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

func (m *SMTPMailer) Send(mail Mail) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%q <%s>", m.cfg.From, m.cfg.Email)
	e.To = []string{mail.To}
	e.Subject = mail.Subject
	e.HTML = []byte(mail.HTML)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)

	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}
	return nil
}
