package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/shelfshare/shelfshare/internal/application/user"
)

func registerTestUser(t *testing.T, repo *memoryUserRepository, email, password string) {
	t.Helper()
	uc := userapp.NewRegisterUserUseCase(repo, plainHasher{})
	_, err := uc.Execute(context.Background(), userapp.RegisterUserCommand{
		Name:     "Test",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
}

func TestLoginUser(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "alice@example.com", "s3cret")
	uc := userapp.NewLoginUserUseCase(repo, plainHasher{})

	result, err := uc.Execute(context.Background(), userapp.LoginCommand{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email())
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	uc := userapp.NewLoginUserUseCase(newMemoryUserRepository(), plainHasher{})

	_, err := uc.Execute(context.Background(), userapp.LoginCommand{
		Email:    "nobody@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, userapp.ErrUserNotFound)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "alice@example.com", "s3cret")
	uc := userapp.NewLoginUserUseCase(repo, plainHasher{})

	// Login never succeeds on a non-matching password, even though the user exists.
	_, err := uc.Execute(context.Background(), userapp.LoginCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)
}

func TestListUsers_ViaRegister(t *testing.T) {
	repo := newMemoryUserRepository()
	registerTestUser(t, repo, "a@example.com", "pw")
	registerTestUser(t, repo, "b@example.com", "pw")
	uc := userapp.NewListUsersUseCase(repo)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
}
