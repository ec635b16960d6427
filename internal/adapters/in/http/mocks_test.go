package http

import (
	"context"

	"bakery/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockAdminHandler[C, R any] struct{ mock.Mock }

func (m *MockAdminHandler[C, R]) Handle(ctx context.Context, caller *user.User, cmd C) (R, error) {
	args := m.Called(ctx, caller, cmd)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

type MockAdminExecHandler[C any] struct{ mock.Mock }

func (m *MockAdminExecHandler[C]) Handle(ctx context.Context, caller *user.User, cmd C) error {
	args := m.Called(ctx, caller, cmd)
	return args.Error(0)
}

type MockPublicHandler[Q, R any] struct{ mock.Mock }

func (m *MockPublicHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}
