package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
)

// LoginUserUseCase handles credential verification on login.
type LoginUserUseCase struct {
	userRepo Repository
	hasher   PasswordHasher
}

// NewLoginUserUseCase creates a new LoginUserUseCase.
func NewLoginUserUseCase(userRepo Repository, hasher PasswordHasher) *LoginUserUseCase {
	return &LoginUserUseCase{userRepo: userRepo, hasher: hasher}
}

// Execute verifies the credentials. The stored hash is never compared in
// cleartext; a missing user and a wrong password stay distinct errors.
func (uc *LoginUserUseCase) Execute(ctx context.Context, cmd LoginCommand) (Result, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return Result{}, fmt.Errorf("validation failed: %w: email and password are required", errs.ErrInvalidInput)
	}

	usr, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, fmt.Errorf("failed to find user: %w", err)
	}

	if compareErr := uc.hasher.Compare(usr.PasswordHash(), cmd.Password); compareErr != nil {
		return Result{}, ErrInvalidCredentials
	}

	return Result{User: usr}, nil
}
