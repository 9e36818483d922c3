package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/alem-hub/alem-classroom/internal/domain/catalog"
	"github.com/alem-hub/alem-classroom/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOOK CACHE PORT
// ══════════════════════════════════════════════════════════════════════════════

// BookCache abstracts the read-through cache for book responses.
// A nil cache disables caching entirely.
type BookCache interface {
	GetBook(ctx context.Context, id string) (*catalog.Book, error)
	SetBook(ctx context.Context, book *catalog.Book) error
	GetList(ctx context.Context) ([]*catalog.Book, error)
	SetList(ctx context.Context, books []*catalog.Book) error
	Invalidate(ctx context.Context, id string) error
}

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST / RESPONSE DTO
// ══════════════════════════════════════════════════════════════════════════════

// CreateBookRequest is the payload for POST /books/.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year,omitempty"`
}

// UpdateBookRequest is the payload for PUT /books/{id}.
// Absent fields keep their current values.
type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Year   *int    `json:"year,omitempty"`
}

// BookResponse is the JSON representation of a book.
type BookResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   *int   `json:"year"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func toBookResponse(b *catalog.Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
	}
}

func toBookResponses(books []*catalog.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

// ══════════════════════════════════════════════════════════════════════════════
// BOOK HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateBook creates a new book.
// POST /books/
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	book, err := catalog.NewBook(catalog.NewBookParams{
		ID:     uuid.NewString(),
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
	})
	if err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "validation_error", "Invalid book data", err.Error())
		return
	}

	if err := s.deps.Books.Create(r.Context(), book); err != nil {
		s.logger.Error("create book failed", logger.Err(err), logger.BookID(book.ID))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to store book")
		return
	}

	s.invalidateCache(r.Context(), book.ID)
	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

// handleListBooks returns all books.
// GET /books/
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	if s.deps.Cache != nil {
		if books, err := s.deps.Cache.GetList(r.Context()); err == nil {
			writeJSON(w, http.StatusOK, toBookResponses(books))
			return
		}
	}

	books, err := s.deps.Books.List(r.Context())
	if err != nil {
		s.logger.Error("list books failed", logger.Err(err))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to list books")
		return
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.SetList(r.Context(), books); err != nil {
			s.logger.Warn("cache list books failed", logger.Err(err))
		}
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

// handleGetBook returns a single book by ID.
// GET /books/{id}
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if s.deps.Cache != nil {
		if book, err := s.deps.Cache.GetBook(r.Context(), id); err == nil {
			writeJSON(w, http.StatusOK, toBookResponse(book))
			return
		}
	}

	book, err := s.deps.Books.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			writeJSONError(w, http.StatusNotFound, "book_not_found", "Book not found")
			return
		}
		s.logger.Error("get book failed", logger.Err(err), logger.BookID(id))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to load book")
		return
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.SetBook(r.Context(), book); err != nil {
			s.logger.Warn("cache book failed", logger.Err(err), logger.BookID(id))
		}
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// handleUpdateBook partially updates a book.
// PUT /books/{id}
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON")
		return
	}

	book, err := s.deps.Books.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			writeJSONError(w, http.StatusNotFound, "book_not_found", "Book not found")
			return
		}
		s.logger.Error("get book failed", logger.Err(err), logger.BookID(id))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to load book")
		return
	}

	if err := book.Apply(catalog.UpdateParams{
		Title:  req.Title,
		Author: req.Author,
		Year:   req.Year,
	}); err != nil {
		writeJSONErrorWithDetails(w, http.StatusBadRequest, "validation_error", "Invalid book data", err.Error())
		return
	}

	if err := s.deps.Books.Update(r.Context(), book); err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			writeJSONError(w, http.StatusNotFound, "book_not_found", "Book not found")
			return
		}
		s.logger.Error("update book failed", logger.Err(err), logger.BookID(id))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to update book")
		return
	}

	s.invalidateCache(r.Context(), id)
	writeJSON(w, http.StatusOK, toBookResponse(book))
}

// handleDeleteBook removes a book.
// DELETE /books/{id}
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.deps.Books.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			writeJSONError(w, http.StatusNotFound, "book_not_found", "Book not found")
			return
		}
		s.logger.Error("delete book failed", logger.Err(err), logger.BookID(id))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to delete book")
		return
	}

	s.invalidateCache(r.Context(), id)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
}

// handleSearchBooks searches by title, author and/or year.
// GET /books/search/?title=...&author=...&year=...
func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	query := catalog.SearchQuery{
		Title:  r.URL.Query().Get("title"),
		Author: r.URL.Query().Get("author"),
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_year", "Year must be an integer")
			return
		}
		query.Year = &year
	}

	if query.IsEmpty() {
		writeJSONError(w, http.StatusBadRequest, "empty_search", "Provide title or author or year to search")
		return
	}

	books, err := s.deps.Books.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptySearch) {
			writeJSONError(w, http.StatusBadRequest, "empty_search", "Provide title or author or year to search")
			return
		}
		s.logger.Error("search books failed", logger.Err(err))
		writeJSONError(w, http.StatusInternalServerError, "storage_error", "Failed to search books")
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

// invalidateCache drops cached entries after a write. Cache errors are
// logged and ignored, the database stays authoritative.
func (s *Server) invalidateCache(ctx context.Context, id string) {
	if s.deps.Cache == nil {
		return
	}
	if err := s.deps.Cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("cache invalidation failed", logger.Err(err), logger.BookID(id))
	}
}
