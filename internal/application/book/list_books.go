package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// ListBooksUseCase produces the annotated listing of all books.
type ListBooksUseCase struct {
	bookRepo Repository
}

// NewListBooksUseCase creates a new ListBooksUseCase.
func NewListBooksUseCase(bookRepo Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute lists all books newest-first, annotated per the query.
func (uc *ListBooksUseCase) Execute(ctx context.Context, query ListBooksQuery) (ListResult, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list books: %w", err)
	}

	return ListResult{Books: buildViews(books, query.FilterUserID, query.BaseURL)}, nil
}

// buildViews annotates each book with its like count, the filter user's
// membership, and fully-qualified file URLs.
func buildViews(books []*book.Book, filterUserID uuid.UUID, baseURL string) []View {
	views := make([]View, 0, len(books))
	for _, b := range books {
		views = append(views, View{
			ID:           b.ID(),
			Title:        b.Title(),
			Category:     b.Category(),
			BookFileURL:  fileURL(baseURL, b.BookFile()),
			BookCoverURL: fileURL(baseURL, b.BookCover()),
			LikedByCount: b.LikedByCount(),
			LikedByUser:  !filterUserID.IsZero() && b.IsLikedBy(filterUserID),
			CreatedAt:    b.CreatedAt(),
		})
	}
	return views
}

// fileURL joins the serving root with the uploads-relative path.
func fileURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + "/uploads/" + path
}
