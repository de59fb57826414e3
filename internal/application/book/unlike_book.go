package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// UnlikeBookUseCase removes a user's like from a book.
type UnlikeBookUseCase struct {
	bookRepo Repository
}

// NewUnlikeBookUseCase creates a new UnlikeBookUseCase.
func NewUnlikeBookUseCase(bookRepo Repository) *UnlikeBookUseCase {
	return &UnlikeBookUseCase{bookRepo: bookRepo}
}

// Execute unlikes the book. Unliking a non-member is a no-op success.
func (uc *UnlikeBookUseCase) Execute(ctx context.Context, cmd UnlikeBookCommand) (LikeResult, error) {
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

	if unlikeErr := b.Unlike(cmd.UserID); unlikeErr != nil {
		return LikeResult{}, unlikeErr
	}

	if removeErr := uc.bookRepo.RemoveLike(ctx, cmd.BookID, cmd.UserID); removeErr != nil {
		return LikeResult{}, fmt.Errorf("failed to persist unlike: %w", removeErr)
	}

	return LikeResult{LikedBy: b.LikedBy()}, nil
}
