package catalog

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Интерфейс определяет контракт для работы с хранилищем каталога.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// SearchQuery - критерии поиска книг. Пустые поля не участвуют в фильтрации;
// Title и Author ищутся по подстроке без учёта регистра.
type SearchQuery struct {
	Title  string
	Author string
	Year   *int
}

// IsEmpty возвращает true, если не задан ни один критерий.
func (q SearchQuery) IsEmpty() bool {
	return q.Title == "" && q.Author == "" && q.Year == nil
}

// Repository определяет операции CRUD для каталога книг.
type Repository interface {
	// Create добавляет новую книгу в каталог.
	Create(ctx context.Context, book *Book) error

	// GetByID возвращает книгу по ID.
	// Возвращает ErrBookNotFound, если книги нет.
	GetByID(ctx context.Context, id string) (*Book, error)

	// List возвращает все книги в порядке добавления.
	List(ctx context.Context) ([]*Book, error)

	// Update сохраняет изменённую книгу.
	// Возвращает ErrBookNotFound, если книги нет.
	Update(ctx context.Context, book *Book) error

	// Delete удаляет книгу по ID.
	// Возвращает ErrBookNotFound, если книги нет.
	Delete(ctx context.Context, id string) error

	// Search возвращает книги по критериям.
	// Возвращает ErrEmptySearch, если критерии пустые.
	Search(ctx context.Context, query SearchQuery) ([]*Book, error)
}
