package user_test

import (
	"context"

	userapp "github.com/shelfshare/shelfshare/internal/application/user"
	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// memoryUserRepository is an in-memory userapp.Repository for tests.
type memoryUserRepository struct {
	users   map[uuid.UUID]*user.User
	saveErr error
	listErr error
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (m *memoryUserRepository) Save(_ context.Context, u *user.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.users[u.ID()] = u
	return nil
}

func (m *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memoryUserRepository) List(_ context.Context) ([]*user.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	users := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

// plainHasher is a trivially reversible hasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return userapp.ErrInvalidCredentials
	}
	return nil
}
