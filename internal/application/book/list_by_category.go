package book

import (
	"context"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// ListByCategoryUseCase produces the listing restricted to one category.
// It returns the same annotated view as the full listing; the raw-document
// shape served by earlier versions leaked filesystem paths.
type ListByCategoryUseCase struct {
	bookRepo Repository
}

// NewListByCategoryUseCase creates a new ListByCategoryUseCase.
func NewListByCategoryUseCase(bookRepo Repository) *ListByCategoryUseCase {
	return &ListByCategoryUseCase{bookRepo: bookRepo}
}

// Execute lists books whose category matches exactly, newest-first.
func (uc *ListByCategoryUseCase) Execute(ctx context.Context, query ListByCategoryQuery) (ListResult, error) {
	if query.Category == "" {
		return ListResult{}, fmt.Errorf("%w: category is required", errs.ErrInvalidInput)
	}

	books, err := uc.bookRepo.ListByCategory(ctx, query.Category)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list books by category: %w", err)
	}

	return ListResult{Books: buildViews(books, query.FilterUserID, query.BaseURL)}, nil
}
