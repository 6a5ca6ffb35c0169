package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookly-app/bookly-server/internal/model"
)

var _ model.BookStore = (*BookRepository)(nil)

type BookRepository struct {
	db *Connection
}

func NewBookRepository(db *Connection) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) List(ctx context.Context, skip, limit int) ([]model.Book, error) {
	const query = `
        SELECT id, title, author, publication, price, created_at, updated_at
        FROM books ORDER BY created_at DESC OFFSET $1 LIMIT $2
    `

	rows, err := r.db.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var book model.Book
		if err := rows.Scan(
			&book.ID, &book.Title, &book.Author, &book.Publication, &book.Price,
			&book.CreatedAt, &book.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}

	return books, nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Book, error) {
	const query = `
        SELECT id, title, author, publication, price, created_at, updated_at
        FROM books WHERE id = $1
    `

	var book model.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.Title, &book.Author, &book.Publication, &book.Price,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to get book by id: %w", err)
	}

	return book, nil
}

func (r *BookRepository) Create(ctx context.Context, book model.Book) (model.Book, error) {
	const query = `
        INSERT INTO books (id, title, author, publication, price, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
        RETURNING id, title, author, publication, price, created_at, updated_at
    `

	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}

	var savedBook model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.Title, book.Author, book.Publication, book.Price,
	).Scan(
		&savedBook.ID, &savedBook.Title, &savedBook.Author, &savedBook.Publication, &savedBook.Price,
		&savedBook.CreatedAt, &savedBook.UpdatedAt,
	)
	if err != nil {
		return model.Book{}, fmt.Errorf("failed to create book: %w", err)
	}

	return savedBook, nil
}

func (r *BookRepository) Update(ctx context.Context, book model.Book) (model.Book, error) {
	const query = `
        UPDATE books SET title = $2, author = $3, publication = $4, price = $5, updated_at = NOW()
        WHERE id = $1
        RETURNING id, title, author, publication, price, created_at, updated_at
    `

	var savedBook model.Book
	err := r.db.QueryRow(ctx, query,
		book.ID, book.Title, book.Author, book.Publication, book.Price,
	).Scan(
		&savedBook.ID, &savedBook.Title, &savedBook.Author, &savedBook.Publication, &savedBook.Price,
		&savedBook.CreatedAt, &savedBook.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, model.ErrNotFound
		}
		return model.Book{}, fmt.Errorf("failed to update book: %w", err)
	}

	return savedBook, nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM books WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
