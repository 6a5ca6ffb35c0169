package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookStore defines persistence operations for books.
type BookStore interface {
	List(ctx context.Context, skip, limit int) ([]Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (Book, error)
	Create(ctx context.Context, book Book) (Book, error)
	Update(ctx context.Context, book Book) (Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book represents a stored book entity.
type Book struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Publication string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
