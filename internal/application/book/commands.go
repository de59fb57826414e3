package book

import (
	"io"

	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// FileUpload is one incoming multipart file.
type FileUpload struct {
	// Name is the original client filename; only its extension survives storage.
	Name    string
	Content io.Reader
}

// UploadBookCommand carries the multipart upload input.
type UploadBookCommand struct {
	Title     string
	Category  string
	BookFile  FileUpload
	BookCover FileUpload
}

// LikeBookCommand marks a book as liked by a user.
type LikeBookCommand struct {
	BookID uuid.UUID
	UserID uuid.UUID
}

// UnlikeBookCommand removes a user's like from a book.
type UnlikeBookCommand struct {
	BookID uuid.UUID
	UserID uuid.UUID
}

// RecordDownloadCommand records one download event by a user.
type RecordDownloadCommand struct {
	BookID uuid.UUID
	UserID uuid.UUID
}
