package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// LikeBookUseCase adds a user's like to a book.
type LikeBookUseCase struct {
	bookRepo Repository
}

// NewLikeBookUseCase creates a new LikeBookUseCase.
func NewLikeBookUseCase(bookRepo Repository) *LikeBookUseCase {
	return &LikeBookUseCase{bookRepo: bookRepo}
}

// Execute likes the book. The aggregate's membership pre-check makes the
// duplicate case explicit; the repository's set-add keeps the write atomic
// under concurrent requests.
func (uc *LikeBookUseCase) Execute(ctx context.Context, cmd LikeBookCommand) (LikeResult, error) {
	if cmd.UserID.IsZero() {
		return LikeResult{}, fmt.Errorf("%w: userId is required", errs.ErrInvalidInput)
	}

	b, err := uc.bookRepo.FindByID(ctx, cmd.BookID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return LikeResult{}, ErrBookNotFound
		}
		return LikeResult{}, fmt.Errorf("failed to find book: %w", err)
	}

	if likeErr := b.Like(cmd.UserID); likeErr != nil {
		return LikeResult{}, likeErr
	}

	if addErr := uc.bookRepo.AddLike(ctx, cmd.BookID, cmd.UserID); addErr != nil {
		return LikeResult{}, fmt.Errorf("failed to persist like: %w", addErr)
	}

	return LikeResult{LikedBy: b.LikedBy()}, nil
}
