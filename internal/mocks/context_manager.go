package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bookly-app/bookly-server/internal/model"
)

// ContextManager is a mock implementation of model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func (m *ContextManager) SetClaimsToContext(ctx context.Context, claims *model.TokenClaims) context.Context {
	args := m.Called(ctx, claims)
	return args.Get(0).(context.Context)
}

func (m *ContextManager) GetClaimsFromContext(ctx context.Context) (*model.TokenClaims, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.TokenClaims), args.Bool(1)
}
