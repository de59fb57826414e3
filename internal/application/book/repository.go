package book

import (
	"context"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// Repository defines the persistence operations the book use cases need.
// The like/download mutations are atomic store-level set operations so that
// concurrent requests cannot duplicate membership; the interface is declared
// on the consumer side (application layer).
type Repository interface {
	// Save persists a new book record.
	Save(ctx context.Context, b *book.Book) error

	// FindByID finds a book by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error)

	// List returns all books sorted by creation time, newest first.
	List(ctx context.Context) ([]*book.Book, error)

	// ListByCategory returns books with an exact category match, same order.
	ListByCategory(ctx context.Context, category string) ([]*book.Book, error)

	// AddLike adds userID to the liked-by set (set-add, no-op when present).
	AddLike(ctx context.Context, bookID, userID uuid.UUID) error

	// RemoveLike removes every occurrence of userID from the liked-by set.
	RemoveLike(ctx context.Context, bookID, userID uuid.UUID) error

	// RecordDownload adds userID to the downloaded-by set if absent and
	// increments the download counter unconditionally, in one atomic update.
	// Returns errs.ErrNotFound when the book does not exist.
	RecordDownload(ctx context.Context, bookID, userID uuid.UUID) error
}
