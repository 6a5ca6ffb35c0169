package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bookly-app/bookly-server/internal/model"
)

// BookStore is a mock implementation of model.BookStore.
type BookStore struct {
	mock.Mock
}

func (m *BookStore) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *BookStore) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) Create(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) Update(ctx context.Context, book model.Book) (model.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
