package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestNewBook(t *testing.T) {
	book, err := NewBook(NewBookParams{
		ID:     "b1",
		Title:  "  The Go Programming Language ",
		Author: "Donovan",
		Year:   intPtr(2015),
	})
	require.NoError(t, err)

	assert.Equal(t, "The Go Programming Language", book.Title)
	assert.Equal(t, "Donovan", book.Author)
	require.NotNil(t, book.Year)
	assert.Equal(t, 2015, *book.Year)
}

func TestNewBook_Validation(t *testing.T) {
	_, err := NewBook(NewBookParams{ID: "b1", Title: "  ", Author: "A"})
	assert.ErrorIs(t, err, ErrBlankTitle)

	_, err = NewBook(NewBookParams{ID: "b1", Title: "T", Author: ""})
	assert.ErrorIs(t, err, ErrBlankAuthor)

	_, err = NewBook(NewBookParams{ID: "b1", Title: "T", Author: "A", Year: intPtr(-5)})
	assert.ErrorIs(t, err, ErrInvalidYear)

	future := time.Now().Year() + 1
	_, err = NewBook(NewBookParams{ID: "b1", Title: "T", Author: "A", Year: intPtr(future)})
	assert.ErrorIs(t, err, ErrInvalidYear)

	_, err = NewBook(NewBookParams{Title: "T", Author: "A"})
	assert.Error(t, err)
}

func TestNewBook_YearOptional(t *testing.T) {
	book, err := NewBook(NewBookParams{ID: "b1", Title: "T", Author: "A"})
	require.NoError(t, err)
	assert.Nil(t, book.Year)
}

func TestBook_Apply(t *testing.T) {
	book, err := NewBook(NewBookParams{ID: "b1", Title: "T", Author: "A", Year: intPtr(1999)})
	require.NoError(t, err)

	require.NoError(t, book.Apply(UpdateParams{Title: strPtr("New Title")}))
	assert.Equal(t, "New Title", book.Title)
	assert.Equal(t, "A", book.Author)
	require.NotNil(t, book.Year)
	assert.Equal(t, 1999, *book.Year)

	require.NoError(t, book.Apply(UpdateParams{Author: strPtr("B"), Year: intPtr(2001)}))
	assert.Equal(t, "B", book.Author)
	assert.Equal(t, 2001, *book.Year)
}

func TestBook_Apply_Validation(t *testing.T) {
	book, err := NewBook(NewBookParams{ID: "b1", Title: "T", Author: "A"})
	require.NoError(t, err)

	assert.ErrorIs(t, book.Apply(UpdateParams{Title: strPtr("   ")}), ErrBlankTitle)
	assert.ErrorIs(t, book.Apply(UpdateParams{Author: strPtr("")}), ErrBlankAuthor)
	assert.ErrorIs(t, book.Apply(UpdateParams{Year: intPtr(-1)}), ErrInvalidYear)

	// Неудачное обновление не изменило книгу.
	assert.Equal(t, "T", book.Title)
	assert.Equal(t, "A", book.Author)
}

func TestSearchQuery_IsEmpty(t *testing.T) {
	assert.True(t, SearchQuery{}.IsEmpty())
	assert.False(t, SearchQuery{Title: "go"}.IsEmpty())
	assert.False(t, SearchQuery{Author: "a"}.IsEmpty())
	assert.False(t, SearchQuery{Year: intPtr(2000)}.IsEmpty())
}
