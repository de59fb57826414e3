package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// UploadBookUseCase handles a multipart book upload: files go to the store
// first, then the record is created. A repository failure after a successful
// file write leaves orphaned files behind; no compensation is attempted.
type UploadBookUseCase struct {
	bookRepo Repository
	files    FileStore
}

// NewUploadBookUseCase creates a new UploadBookUseCase.
func NewUploadBookUseCase(bookRepo Repository, files FileStore) *UploadBookUseCase {
	return &UploadBookUseCase{bookRepo: bookRepo, files: files}
}

// Execute stores both files and persists the book record.
func (uc *UploadBookUseCase) Execute(ctx context.Context, cmd UploadBookCommand) (Result, error) {
	if err := uc.validate(cmd); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	filePath, err := uc.files.SaveBookFile(cmd.BookFile.Name, cmd.BookFile.Content)
	if err != nil {
		return Result{}, fmt.Errorf("failed to store book file: %w", err)
	}

	coverPath, err := uc.files.SaveCover(cmd.BookCover.Name, cmd.BookCover.Content)
	if err != nil {
		return Result{}, fmt.Errorf("failed to store cover: %w", err)
	}

	b, err := book.NewBook(cmd.Title, cmd.Category, filePath, coverPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create book: %w", err)
	}

	if saveErr := uc.bookRepo.Save(ctx, b); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save book: %w", saveErr)
	}

	return Result{Book: b}, nil
}

func (uc *UploadBookUseCase) validate(cmd UploadBookCommand) error {
	if strings.TrimSpace(cmd.Title) == "" {
		return fmt.Errorf("%w: title is required", errs.ErrInvalidInput)
	}
	if cmd.BookFile.Content == nil {
		return fmt.Errorf("%w: bookFile is required", errs.ErrInvalidInput)
	}
	if cmd.BookCover.Content == nil {
		return fmt.Errorf("%w: bookCover is required", errs.ErrInvalidInput)
	}
	return nil
}
