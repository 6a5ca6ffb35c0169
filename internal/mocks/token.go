package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bookly-app/bookly-server/internal/model"
)

// TokenManager is a mock implementation of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(subject model.Subject, refresh bool, ttl time.Duration) (string, error) {
	args := m.Called(subject, refresh, ttl)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Decode(token string) (*model.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenClaims), args.Error(1)
}

// TokenBlocklist is a mock implementation of model.TokenBlocklist.
type TokenBlocklist struct {
	mock.Mock
}

func (m *TokenBlocklist) Revoke(ctx context.Context, jti string) error {
	args := m.Called(ctx, jti)
	return args.Error(0)
}

func (m *TokenBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

// PasswordHasher is a mock implementation of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(password, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}
