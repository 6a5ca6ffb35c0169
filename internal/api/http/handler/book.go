package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bookly-app/bookly-server/internal/logger"
	"github.com/bookly-app/bookly-server/internal/model"
	"github.com/bookly-app/bookly-server/internal/service"
)

// BookService defines book CRUD operations.
type BookService interface {
	List(ctx context.Context, skip, limit int) ([]model.Book, error)
	Get(ctx context.Context, id uuid.UUID) (model.Book, error)
	Create(ctx context.Context, params service.CreateBookParams) (model.Book, error)
	Update(ctx context.Context, id uuid.UUID, params service.UpdateBookParams) (model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Book handles HTTP endpoints for book operations.
type Book struct {
	bookService BookService
	logger      *logger.Logger
}

// NewBook creates a new Book handler.
func NewBook(bookService BookService, logger *logger.Logger) *Book {
	return &Book{bookService: bookService, logger: logger}
}

type createBookRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Author      string  `json:"author" binding:"required,max=100"`
	Publication string  `json:"publication" binding:"required,max=100"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type updateBookRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Author      *string  `json:"author" binding:"omitempty,max=100"`
	Publication *string  `json:"publication" binding:"omitempty,max=100"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
}

type bookResponse struct {
	UID         uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Publication string    `json:"publication"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookResponse(book model.Book) bookResponse {
	return bookResponse{
		UID:         book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Publication: book.Publication,
		Price:       book.Price,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}

// trimmed strips surrounding whitespace and reports whether anything remains.
func trimmed(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, t != ""
}

// List handles GET /books.
func (h *Book) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultListLimit)))
	if err != nil || limit < 1 || limit > service.MaxListLimit {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "limit must be between 1 and 1000"})
		return
	}

	books, err := h.bookService.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("Book handler: list failed", "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for _, book := range books {
		resp = append(resp, toBookResponse(book))
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /books/:id.
func (h *Book) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid book id"})
		return
	}

	book, err := h.bookService.Get(c.Request.Context(), id)
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// Create handles POST /books.
func (h *Book) Create(c *gin.Context) {
	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	params := service.CreateBookParams{Price: req.Price}
	var ok bool
	if params.Title, ok = trimmed(req.Title); !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "title cannot be empty"})
		return
	}
	if params.Author, ok = trimmed(req.Author); !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "author cannot be empty"})
		return
	}
	if params.Publication, ok = trimmed(req.Publication); !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "publication cannot be empty"})
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Book handler: create failed", "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(book))
}

// Update handles PUT /books/:id with partial-update semantics.
func (h *Book) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid book id"})
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	params := service.UpdateBookParams{Price: req.Price}
	if req.Title != nil {
		t, ok := trimmed(*req.Title)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "title cannot be empty"})
			return
		}
		params.Title = &t
	}
	if req.Author != nil {
		t, ok := trimmed(*req.Author)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "author cannot be empty"})
			return
		}
		params.Author = &t
	}
	if req.Publication != nil {
		t, ok := trimmed(*req.Publication)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "publication cannot be empty"})
			return
		}
		params.Publication = &t
	}

	book, err := h.bookService.Update(c.Request.Context(), id, params)
	if err != nil {
		h.logger.Error("Book handler: update failed", "book_id", id, "error", err.Error())
		newErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /books/:id.
func (h *Book) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid book id"})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), id); err != nil {
		newErrorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
