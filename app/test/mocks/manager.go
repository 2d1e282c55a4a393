package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"backend/cipherhacks-mailer/app/api/client/request"
)

type MockEmailManager struct {
	mock.Mock
}

func (m *MockEmailManager) SendVerificationEmail(ctx context.Context, req request.SendEmailRequest, remoteIP string) error {
	return m.Called(ctx, req, remoteIP).Error(0)
}
