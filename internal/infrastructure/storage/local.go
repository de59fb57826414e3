// Package storage persists uploaded book files and covers on the local
// filesystem under the configured uploads directory.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

const (
	booksDir  = "books"
	coversDir = "covers"

	dirPerm = 0o755
)

// LocalStore writes uploads to <root>/books and <root>/covers. Stored names
// are derived server-side; the client-supplied name only contributes its
// extension.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at dir and ensures the books and
// covers subdirectories exist.
func NewLocalStore(dir string) (*LocalStore, error) {
	for _, sub := range []string{booksDir, coversDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), dirPerm); err != nil {
			return nil, fmt.Errorf("failed to create uploads directory: %w", err)
		}
	}
	return &LocalStore{root: dir}, nil
}

// SaveBookFile stores a book file and returns its root-relative path.
func (s *LocalStore) SaveBookFile(originalName string, r io.Reader) (string, error) {
	return s.save(booksDir, originalName, r)
}

// SaveCover stores a cover image and returns its root-relative path.
func (s *LocalStore) SaveCover(originalName string, r io.Reader) (string, error) {
	return s.save(coversDir, originalName, r)
}

func (s *LocalStore) save(sub, originalName string, r io.Reader) (string, error) {
	name := storedName(originalName)

	f, err := os.Create(filepath.Join(s.root, sub, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	if err = f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	// Forward slashes regardless of platform, the path ends up in URLs.
	return path.Join(sub, name), nil
}

// storedName builds a collision-free filename. The timestamp keeps listings
// roughly chronological on disk, the UUID guards same-instant uploads.
func storedName(originalName string) string {
	ext := filepath.Ext(filepath.Base(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewUUID(), ext)
}
