// Package mock provides a testify mock of the Mailer interface.
package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/mealgenie/backend/internal/server/mailer"
)

type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) Send(mail mailer.Mail) error {
	args := m.Called(mail)
	return args.Error(0)
}
