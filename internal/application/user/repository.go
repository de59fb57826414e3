package user

import (
	"context"

	"github.com/shelfshare/shelfshare/internal/domain/user"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// Repository defines the persistence operations the user use cases need.
// The interface is declared on the consumer side (application layer).
type Repository interface {
	// Save persists a user (creation or update).
	Save(ctx context.Context, u *user.User) error

	// FindByID finds a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)

	// FindByEmail finds a user by email.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// List returns all users.
	List(ctx context.Context) ([]*user.User, error)
}

// PasswordHasher hashes passwords on signup and verifies them on login.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
