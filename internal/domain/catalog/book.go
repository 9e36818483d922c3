// Package catalog содержит доменную модель каталога книг Alem Classroom.
// Это ядро бизнес-логики CRUD-сервиса - здесь нет внешних зависимостей.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrBookNotFound - книга не найдена в каталоге.
	ErrBookNotFound = errors.New("book not found")

	// ErrBlankTitle - название книги пустое или состоит из пробелов.
	ErrBlankTitle = errors.New("title cannot be empty")

	// ErrBlankAuthor - автор книги пустой или состоит из пробелов.
	ErrBlankAuthor = errors.New("author cannot be empty")

	// ErrInvalidYear - год издания отрицательный или находится в будущем.
	ErrInvalidYear = errors.New("year must be positive and not in the future")

	// ErrEmptySearch - поисковый запрос без единого критерия.
	ErrEmptySearch = errors.New("provide title or author or year to search")
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: BOOK
// ══════════════════════════════════════════════════════════════════════════════

// Book - книга в каталоге.
type Book struct {
	// ID - уникальный идентификатор книги (UUID в строковом формате).
	ID string

	// Title - название книги. Не может быть пустым.
	Title string

	// Author - автор книги. Не может быть пустым.
	Author string

	// Year - год издания. nil означает, что год не указан.
	Year *int

	// CreatedAt - время добавления книги в каталог.
	CreatedAt time.Time

	// UpdatedAt - время последнего изменения.
	UpdatedAt time.Time
}

// String возвращает строковое представление книги для логирования.
func (b *Book) String() string {
	year := "n/a"
	if b.Year != nil {
		year = fmt.Sprintf("%d", *b.Year)
	}
	return fmt.Sprintf("Book{ID: %s, Title: %s, Author: %s, Year: %s}", b.ID, b.Title, b.Author, year)
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewBookParams содержит параметры для создания новой книги.
type NewBookParams struct {
	ID     string
	Title  string
	Author string
	Year   *int
}

// NewBook создаёт новую книгу с валидацией всех полей.
func NewBook(params NewBookParams) (*Book, error) {
	if params.ID == "" {
		return nil, errors.New("book id is required")
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, ErrBlankTitle
	}

	author := strings.TrimSpace(params.Author)
	if author == "" {
		return nil, ErrBlankAuthor
	}

	if err := validateYear(params.Year); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Book{
		ID:        params.ID,
		Title:     title,
		Author:    author,
		Year:      params.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// validateYear проверяет, что год (если указан) положительный и не в будущем.
func validateYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year < 0 || *year > time.Now().Year() {
		return ErrInvalidYear
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// UPDATES
// ══════════════════════════════════════════════════════════════════════════════

// UpdateParams - частичное обновление книги: применяются только ненулевые поля.
type UpdateParams struct {
	Title  *string
	Author *string
	Year   *int
}

// Apply применяет частичное обновление с валидацией каждого поля.
func (b *Book) Apply(params UpdateParams) error {
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return ErrBlankTitle
		}
		b.Title = title
	}

	if params.Author != nil {
		author := strings.TrimSpace(*params.Author)
		if author == "" {
			return ErrBlankAuthor
		}
		b.Author = author
	}

	if params.Year != nil {
		if err := validateYear(params.Year); err != nil {
			return err
		}
		b.Year = params.Year
	}

	b.UpdatedAt = time.Now().UTC()
	return nil
}
