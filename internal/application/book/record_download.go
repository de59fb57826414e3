package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// RecordDownloadUseCase records one download event.
type RecordDownloadUseCase struct {
	bookRepo Repository
}

// NewRecordDownloadUseCase creates a new RecordDownloadUseCase.
func NewRecordDownloadUseCase(bookRepo Repository) *RecordDownloadUseCase {
	return &RecordDownloadUseCase{bookRepo: bookRepo}
}

// Execute records the download: the user joins the downloaded-by set at most
// once, the counter grows on every call. An unknown book is an error rather
// than the document store's silent no-op.
func (uc *RecordDownloadUseCase) Execute(ctx context.Context, cmd RecordDownloadCommand) error {
	if cmd.UserID.IsZero() {
		return fmt.Errorf("%w: userId is required", errs.ErrInvalidInput)
	}

	if err := uc.bookRepo.RecordDownload(ctx, cmd.BookID, cmd.UserID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("failed to record download: %w", err)
	}

	return nil
}
