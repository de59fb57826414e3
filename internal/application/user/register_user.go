package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/user"
)

// RegisterUserUseCase handles signup of a new user.
type RegisterUserUseCase struct {
	userRepo Repository
	hasher   PasswordHasher
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase.
func NewRegisterUserUseCase(userRepo Repository, hasher PasswordHasher) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, hasher: hasher}
}

// Execute registers a user. The email must be unique; the password is hashed
// before it reaches the aggregate.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (Result, error) {
	if err := uc.validate(cmd); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	role, err := user.ParseRole(cmd.Role)
	if err != nil {
		return Result{}, fmt.Errorf("validation failed: %w: role must be admin or user", errs.ErrInvalidInput)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return Result{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return Result{}, ErrEmailAlreadyExists
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return Result{}, fmt.Errorf("failed to hash password: %w", err)
	}

	usr, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create user: %w", err)
	}

	if saveErr := uc.userRepo.Save(ctx, usr); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save user: %w", saveErr)
	}

	return Result{User: usr}, nil
}

func (uc *RegisterUserUseCase) validate(cmd RegisterUserCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidInput)
	}
	if strings.TrimSpace(cmd.Email) == "" {
		return fmt.Errorf("%w: email is required", errs.ErrInvalidInput)
	}
	if cmd.Password == "" {
		return fmt.Errorf("%w: password is required", errs.ErrInvalidInput)
	}
	return nil
}
