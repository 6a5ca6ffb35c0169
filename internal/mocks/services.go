package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bookly-app/bookly-server/internal/model"
	"github.com/bookly-app/bookly-server/internal/service"
)

// AuthService is a mock implementation of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Signup(ctx context.Context, params service.SignupParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (model.User, service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Get(1).(service.TokenPair), args.Error(2)
}

func (m *AuthService) Refresh(ctx context.Context, claims *model.TokenClaims) (string, error) {
	args := m.Called(ctx, claims)
	return args.String(0), args.Error(1)
}

func (m *AuthService) Logout(ctx context.Context, claims *model.TokenClaims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

// BookService is a mock implementation of handler.BookService.
type BookService struct {
	mock.Mock
}

func (m *BookService) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *BookService) Get(ctx context.Context, id uuid.UUID) (model.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookService) Create(ctx context.Context, params service.CreateBookParams) (model.Book, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookService) Update(ctx context.Context, id uuid.UUID, params service.UpdateBookParams) (model.Book, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
