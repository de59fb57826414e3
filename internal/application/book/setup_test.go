package book_test

import (
	"context"
	"io"
	"sort"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// memoryBookRepository is an in-memory bookapp.Repository for tests. Its
// mutation methods mirror the store-level set semantics of the real
// repository.
type memoryBookRepository struct {
	books   map[uuid.UUID]*book.Book
	saveErr error
}

func newMemoryBookRepository() *memoryBookRepository {
	return &memoryBookRepository{books: make(map[uuid.UUID]*book.Book)}
}

func (m *memoryBookRepository) Save(_ context.Context, b *book.Book) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.books[b.ID()] = b
	return nil
}

func (m *memoryBookRepository) FindByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := m.books[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return b, nil
}

func (m *memoryBookRepository) List(_ context.Context) ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt().After(books[j].CreatedAt())
	})
	return books, nil
}

func (m *memoryBookRepository) ListByCategory(ctx context.Context, category string) ([]*book.Book, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var books []*book.Book
	for _, b := range all {
		if b.Category() == category {
			books = append(books, b)
		}
	}
	return books, nil
}

func (m *memoryBookRepository) AddLike(_ context.Context, bookID, userID uuid.UUID) error {
	b, ok := m.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	if !b.IsLikedBy(userID) {
		_ = b.Like(userID)
	}
	return nil
}

func (m *memoryBookRepository) RemoveLike(_ context.Context, bookID, userID uuid.UUID) error {
	b, ok := m.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	return b.Unlike(userID)
}

func (m *memoryBookRepository) RecordDownload(_ context.Context, bookID, userID uuid.UUID) error {
	b, ok := m.books[bookID]
	if !ok {
		return errs.ErrNotFound
	}
	return b.RecordDownload(userID)
}

// memoryFileStore records uploads instead of touching the filesystem.
type memoryFileStore struct {
	saved []string
}

func (m *memoryFileStore) SaveBookFile(name string, r io.Reader) (string, error) {
	return m.save("books/"+name, r)
}

func (m *memoryFileStore) SaveCover(name string, r io.Reader) (string, error) {
	return m.save("covers/"+name, r)
}

func (m *memoryFileStore) save(path string, r io.Reader) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	m.saved = append(m.saved, path)
	return path, nil
}
