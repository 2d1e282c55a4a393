package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"backend/cipherhacks-mailer/app/pkg/turnstile"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, token, remoteIP string) (turnstile.Result, error) {
	args := m.Called(ctx, token, remoteIP)
	return args.Get(0).(turnstile.Result), args.Error(1)
}
