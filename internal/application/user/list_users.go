package user

import (
	"context"
	"fmt"
)

// ListUsersUseCase handles retrieval of the full user list.
type ListUsersUseCase struct {
	userRepo Repository
}

// NewListUsersUseCase creates a new ListUsersUseCase.
func NewListUsersUseCase(userRepo Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute returns all users. Stripping the password hashes is the response
// layer's job; the use case returns full aggregates.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (UsersListResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return UsersListResult{}, fmt.Errorf("failed to list users: %w", err)
	}

	return UsersListResult{Users: users}, nil
}
