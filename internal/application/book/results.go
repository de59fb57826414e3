package book

import (
	"time"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// Result is the outcome of a single-book operation.
type Result struct {
	Book *book.Book
}

// LikeResult carries the liked-by set after a like/unlike mutation.
type LikeResult struct {
	LikedBy []uuid.UUID
}

// View is one annotated entry of a book listing: like counts resolved,
// file paths rewritten to fully-qualified URLs.
type View struct {
	ID           uuid.UUID
	Title        string
	Category     string
	BookFileURL  string
	BookCoverURL string
	LikedByCount int
	LikedByUser  bool
	CreatedAt    time.Time
}

// ListResult is the outcome of a listing query: a finite snapshot, not a
// live cursor.
type ListResult struct {
	Books []View
}
