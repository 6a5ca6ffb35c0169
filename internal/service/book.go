package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
)

const (
	// DefaultListLimit caps a list request that names no limit.
	DefaultListLimit = 100
	// MaxListLimit is the largest page a single list request may return.
	MaxListLimit = 1000
)

// Book provides book CRUD operations on top of a BookStore.
type Book struct {
	bookStore model.BookStore
	logger    *logger.Logger
}

// CreateBookParams contains parameters to create a book.
type CreateBookParams struct {
	Title       string
	Author      string
	Publication string
	Price       float64
}

// UpdateBookParams contains the fields of a partial update. Nil fields are
// left unchanged.
type UpdateBookParams struct {
	Title       *string
	Author      *string
	Publication *string
	Price       *float64
}

func NewBook(bookStore model.BookStore, logger *logger.Logger) *Book {
	return &Book{bookStore: bookStore, logger: logger}
}

// List returns books ordered by creation date, newest first.
func (s *Book) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	books, err := s.bookStore.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	s.logger.Debug("Book service: listed books", "count", len(books))

	return books, nil
}

func (s *Book) Get(ctx context.Context, id uuid.UUID) (model.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Book) Create(ctx context.Context, params CreateBookParams) (model.Book, error) {
	book := model.Book{
		ID:          uuid.New(),
		Title:       params.Title,
		Author:      params.Author,
		Publication: params.Publication,
		Price:       params.Price,
	}

	savedBook, err := s.bookStore.Create(ctx, book)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book service: book created", "book_id", savedBook.ID, "title", savedBook.Title)

	return savedBook, nil
}

// Update applies a partial update: only the fields present in params change.
func (s *Book) Update(ctx context.Context, id uuid.UUID, params UpdateBookParams) (model.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		return model.Book{}, err
	}

	if params.Title != nil {
		book.Title = *params.Title
	}
	if params.Author != nil {
		book.Author = *params.Author
	}
	if params.Publication != nil {
		book.Publication = *params.Publication
	}
	if params.Price != nil {
		book.Price = *params.Price
	}

	savedBook, err := s.bookStore.Update(ctx, book)
	if err != nil {
		return model.Book{}, err
	}

	s.logger.Info("Book service: book updated", "book_id", id)

	return savedBook, nil
}

func (s *Book) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bookStore.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Book service: book deleted", "book_id", id)

	return nil
}
