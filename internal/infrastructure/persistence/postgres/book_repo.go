package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/alem-classroom/internal/domain/catalog"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOOK REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// BookRepository implements catalog.Repository for PostgreSQL.
type BookRepository struct {
	conn *Connection
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(conn *Connection) *BookRepository {
	return &BookRepository{conn: conn}
}

const bookColumns = "id, title, author, year, created_at, updated_at"

// Create inserts a new book.
func (r *BookRepository) Create(ctx context.Context, b *catalog.Book) error {
	query := `
		INSERT INTO books_collection (id, title, author, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.conn.Exec(ctx, query, b.ID, b.Title, b.Author, b.Year, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// GetByID returns a book by ID.
// Returns catalog.ErrBookNotFound when no such book exists.
func (r *BookRepository) GetByID(ctx context.Context, id string) (*catalog.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books_collection WHERE id = $1", bookColumns)

	row := r.conn.QueryRow(ctx, query, id)
	return scanBook(row)
}

// List returns all books in insertion order.
func (r *BookRepository) List(ctx context.Context) ([]*catalog.Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books_collection ORDER BY created_at, id", bookColumns)

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// Update saves a changed book.
func (r *BookRepository) Update(ctx context.Context, b *catalog.Book) error {
	query := `
		UPDATE books_collection
		SET title = $2, author = $3, year = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.conn.Exec(ctx, query, b.ID, b.Title, b.Author, b.Year, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrBookNotFound
	}
	return nil
}

// Delete removes a book by ID.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM books_collection WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrBookNotFound
	}
	return nil
}

// Search returns books matching the query. Title and author match as
// case-insensitive substrings, year matches exactly.
func (r *BookRepository) Search(ctx context.Context, q catalog.SearchQuery) ([]*catalog.Book, error) {
	if q.IsEmpty() {
		return nil, catalog.ErrEmptySearch
	}

	var (
		conditions []string
		args       []any
	)

	if q.Title != "" {
		args = append(args, "%"+q.Title+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if q.Author != "" {
		args = append(args, "%"+q.Author+"%")
		conditions = append(conditions, fmt.Sprintf("author ILIKE $%d", len(args)))
	}
	if q.Year != nil {
		args = append(args, *q.Year)
		conditions = append(conditions, fmt.Sprintf("year = $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM books_collection WHERE %s ORDER BY created_at, id",
		bookColumns, strings.Join(conditions, " AND "),
	)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

// ─────────────────────────────────────────────────────────────────────────────
// Row scanning
// ─────────────────────────────────────────────────────────────────────────────

func scanBook(row pgx.Row) (*catalog.Book, error) {
	var b catalog.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to scan book: %w", err)
	}
	return &b, nil
}

func scanBooks(rows pgx.Rows) ([]*catalog.Book, error) {
	books := make([]*catalog.Book, 0)
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Year, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}
