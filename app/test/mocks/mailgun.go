package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"backend/cipherhacks-mailer/app/pkg/mailgun"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, message mailgun.Message) error {
	return m.Called(ctx, message).Error(0)
}
