package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommandHandler is a mock implementation of CommandHandler.
type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// MockResultHandler is a mock implementation of ResultHandler.
type MockResultHandler[C, R any] struct {
	mock.Mock
}

func (m *MockResultHandler[C, R]) Handle(ctx context.Context, in C) (R, error) {
	args := m.Called(ctx, in)
	var zero R
	if v := args.Get(0); v != nil {
		return v.(R), args.Error(1)
	}
	return zero, args.Error(1)
}
