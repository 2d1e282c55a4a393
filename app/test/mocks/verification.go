package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) Generate(ctx context.Context, recipient string) (string, error) {
	args := m.Called(ctx, recipient)
	return args.String(0), args.Error(1)
}
