package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/shelfshare/shelfshare/internal/application/user"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

func TestGetUser(t *testing.T) {
	repo := newMemoryUserRepository()
	stored, err := user.NewUser("Alice", "alice@example.com", "hash", user.RoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), stored))

	uc := userapp.NewGetUserUseCase(repo)

	result, err := uc.Execute(context.Background(), stored.ID())
	require.NoError(t, err)
	assert.Equal(t, stored.ID(), result.User.ID())
	assert.Equal(t, "alice@example.com", result.User.Email())
}

func TestGetUser_NotFound(t *testing.T) {
	uc := userapp.NewGetUserUseCase(newMemoryUserRepository())

	_, err := uc.Execute(context.Background(), uuid.NewUUID())
	assert.ErrorIs(t, err, userapp.ErrUserNotFound)
}

func TestGetUser_ZeroID(t *testing.T) {
	uc := userapp.NewGetUserUseCase(newMemoryUserRepository())

	_, err := uc.Execute(context.Background(), uuid.UUID(""))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestListUsers(t *testing.T) {
	repo := newMemoryUserRepository()
	for _, email := range []string{"alice@example.com", "bob@example.com"} {
		u, err := user.NewUser("Reader", email, "hash", user.RoleUser)
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), u))
	}

	uc := userapp.NewListUsersUseCase(repo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
}

func TestListUsers_Empty(t *testing.T) {
	uc := userapp.NewListUsersUseCase(newMemoryUserRepository())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Users)
}

func TestListUsers_RepositoryError(t *testing.T) {
	repo := newMemoryUserRepository()
	repo.listErr = errors.New("connection reset")

	uc := userapp.NewListUsersUseCase(repo)

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
}
