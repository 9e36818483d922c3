package postgres

import (
	"context"
	"fmt"
)

// ══════════════════════════════════════════════════════════════════════════════
// SCHEMA
// The catalog creates its table at startup if it does not exist yet.
// ══════════════════════════════════════════════════════════════════════════════

const schemaBooks = `
CREATE TABLE IF NOT EXISTS books_collection (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    year INTEGER,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT non_blank_title CHECK (length(trim(title)) > 0),
    CONSTRAINT non_blank_author CHECK (length(trim(author)) > 0),
    CONSTRAINT valid_year CHECK (year IS NULL OR year >= 0)
);

CREATE INDEX IF NOT EXISTS idx_books_title ON books_collection (lower(title));
CREATE INDEX IF NOT EXISTS idx_books_author ON books_collection (lower(author));
CREATE INDEX IF NOT EXISTS idx_books_year ON books_collection (year);
`

// EnsureSchema creates the books table and its indexes if they are missing.
func EnsureSchema(ctx context.Context, conn *Connection) error {
	if _, err := conn.Exec(ctx, schemaBooks); err != nil {
		return fmt.Errorf("postgres: failed to ensure schema: %w", err)
	}
	return nil
}
