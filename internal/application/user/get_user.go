package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// GetUserUseCase loads a single user by ID. The auth gate uses it to turn a
// verified token subject into a user.
type GetUserUseCase struct {
	userRepo Repository
}

// NewGetUserUseCase creates a new GetUserUseCase.
func NewGetUserUseCase(userRepo Repository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute finds the user by ID.
func (uc *GetUserUseCase) Execute(ctx context.Context, id uuid.UUID) (Result, error) {
	if id.IsZero() {
		return Result{}, fmt.Errorf("%w: user id is required", errs.ErrInvalidInput)
	}

	usr, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, fmt.Errorf("failed to find user: %w", err)
	}

	return Result{User: usr}, nil
}
