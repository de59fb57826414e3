package book

import "io"

// FileStore persists uploaded book files and cover images. Implementations
// return the stored path relative to the uploads root (e.g. "books/17….pdf").
type FileStore interface {
	SaveBookFile(originalName string, r io.Reader) (string, error)
	SaveCover(originalName string, r io.Reader) (string, error)
}
