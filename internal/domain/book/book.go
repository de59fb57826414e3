// Package book holds the Book aggregate and its like/download set semantics.
package book

import (
	"errors"
	"time"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// ErrAlreadyLiked is returned when a user likes a book twice.
var ErrAlreadyLiked = errors.New("book already liked")

// Book represents an uploaded book. LikedBy and DownloadedBy are sets of
// user ids; uniqueness is enforced here by an explicit membership check, not
// by the storage layer. DownloadCount counts download events and is
// independent of the DownloadedBy membership size.
type Book struct {
	id            uuid.UUID
	title         string
	category      string
	bookFile      string
	bookCover     string
	likedBy       []uuid.UUID
	downloadedBy  []uuid.UUID
	downloadCount int64
	createdAt     time.Time
}

// NewBook creates a new book record. bookFile and bookCover are paths
// relative to the uploads root, e.g. "books/169…pdf".
func NewBook(title, category, bookFile, bookCover string) (*Book, error) {
	if title == "" || bookFile == "" || bookCover == "" {
		return nil, errs.ErrInvalidInput
	}

	return &Book{
		id:        uuid.NewUUID(),
		title:     title,
		category:  category,
		bookFile:  bookFile,
		bookCover: bookCover,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct restores a book from storage.
func Reconstruct(
	id uuid.UUID,
	title, category, bookFile, bookCover string,
	likedBy, downloadedBy []uuid.UUID,
	downloadCount int64,
	createdAt time.Time,
) *Book {
	return &Book{
		id:            id,
		title:         title,
		category:      category,
		bookFile:      bookFile,
		bookCover:     bookCover,
		likedBy:       likedBy,
		downloadedBy:  downloadedBy,
		downloadCount: downloadCount,
		createdAt:     createdAt,
	}
}

// ID returns the book ID.
func (b *Book) ID() uuid.UUID {
	return b.id
}

// Title returns the title.
func (b *Book) Title() string {
	return b.title
}

// Category returns the category label.
func (b *Book) Category() string {
	return b.category
}

// BookFile returns the book file path relative to the uploads root.
func (b *Book) BookFile() string {
	return b.bookFile
}

// BookCover returns the cover image path relative to the uploads root.
func (b *Book) BookCover() string {
	return b.bookCover
}

// LikedBy returns the set of user ids that liked the book.
func (b *Book) LikedBy() []uuid.UUID {
	return b.likedBy
}

// DownloadedBy returns the set of user ids that downloaded the book.
func (b *Book) DownloadedBy() []uuid.UUID {
	return b.downloadedBy
}

// DownloadCount returns the total number of recorded downloads.
func (b *Book) DownloadCount() int64 {
	return b.downloadCount
}

// CreatedAt returns the creation time, the sort key for listings.
func (b *Book) CreatedAt() time.Time {
	return b.createdAt
}

// IsLikedBy reports whether userID is a member of the liked-by set.
// Membership is plain string equality against each stored id.
func (b *Book) IsLikedBy(userID uuid.UUID) bool {
	for _, id := range b.likedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// LikedByCount returns the size of the liked-by set.
func (b *Book) LikedByCount() int {
	return len(b.likedBy)
}

// Like adds userID to the liked-by set. The membership pre-check makes the
// duplicate case an explicit ErrAlreadyLiked rather than relying on the
// store to deduplicate.
func (b *Book) Like(userID uuid.UUID) error {
	if userID.IsZero() {
		return errs.ErrInvalidInput
	}
	if b.IsLikedBy(userID) {
		return ErrAlreadyLiked
	}
	b.likedBy = append(b.likedBy, userID)
	return nil
}

// Unlike removes every occurrence of userID from the liked-by set. Unliking
// a non-member is a no-op success.
func (b *Book) Unlike(userID uuid.UUID) error {
	if userID.IsZero() {
		return errs.ErrInvalidInput
	}
	kept := b.likedBy[:0]
	for _, id := range b.likedBy {
		if id != userID {
			kept = append(kept, id)
		}
	}
	b.likedBy = kept
	return nil
}

// RecordDownload adds userID to the downloaded-by set if absent and always
// increments the download counter. Only the first download by a user changes
// membership; every download counts.
func (b *Book) RecordDownload(userID uuid.UUID) error {
	if userID.IsZero() {
		return errs.ErrInvalidInput
	}
	member := false
	for _, id := range b.downloadedBy {
		if id == userID {
			member = true
			break
		}
	}
	if !member {
		b.downloadedBy = append(b.downloadedBy, userID)
	}
	b.downloadCount++
	return nil
}
