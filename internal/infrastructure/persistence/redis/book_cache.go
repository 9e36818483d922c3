package redis

import (
	"context"
	"time"

	"github.com/alem-hub/alem-classroom/internal/domain/catalog"
)

// ══════════════════════════════════════════════════════════════════════════════
// BOOK CACHE
// ══════════════════════════════════════════════════════════════════════════════

// Key prefixes for catalog keys.
const (
	// PrefixBook is the prefix for single book keys.
	PrefixBook = "book:"

	// KeyBookList is the key for the full catalog listing.
	KeyBookList = "books:all"
)

// TTLBookCache is how long cached catalog data stays valid.
const TTLBookCache = 10 * time.Minute

// BookKey builds the cache key for one book.
func BookKey(id string) string {
	return PrefixBook + id
}

// BookCache caches catalog reads on top of the generic Cache.
type BookCache struct {
	cache *Cache
}

// NewBookCache creates a new BookCache.
func NewBookCache(cache *Cache) *BookCache {
	return &BookCache{cache: cache}
}

// GetBook returns a cached book. Returns ErrCacheMiss when absent.
func (b *BookCache) GetBook(ctx context.Context, id string) (*catalog.Book, error) {
	var book catalog.Book
	if err := b.cache.Get(ctx, BookKey(id), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// SetBook caches one book.
func (b *BookCache) SetBook(ctx context.Context, book *catalog.Book) error {
	if book == nil {
		return nil
	}
	return b.cache.Set(ctx, BookKey(book.ID), book, TTLBookCache)
}

// GetList returns the cached full listing. Returns ErrCacheMiss when absent.
func (b *BookCache) GetList(ctx context.Context) ([]*catalog.Book, error) {
	var books []*catalog.Book
	if err := b.cache.Get(ctx, KeyBookList, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SetList caches the full listing.
func (b *BookCache) SetList(ctx context.Context, books []*catalog.Book) error {
	return b.cache.Set(ctx, KeyBookList, books, TTLBookCache)
}

// Invalidate drops the cached entry for a book and the listing.
// Called after every write so reads never serve stale data.
func (b *BookCache) Invalidate(ctx context.Context, id string) error {
	return b.cache.Delete(ctx, BookKey(id), KeyBookList)
}
