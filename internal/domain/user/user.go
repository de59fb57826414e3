package user

import (
	"time"

	"github.com/shelfshare/shelfshare/internal/domain/errs"
	"github.com/shelfshare/shelfshare/internal/domain/uuid"
)

// Role is the access role of a user.
type Role string

// Known roles. Anything that is not an admin is a regular user.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a client-supplied role value. An empty value defaults
// to RoleUser; anything other than the known roles is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", errs.ErrInvalidInput
	}
}

// User represents a registered account. The password is held only as a
// bcrypt hash and never leaves the domain in cleartext.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
}

// NewUser creates a new user with a freshly generated ID. passwordHash must
// already be hashed; the aggregate never sees the cleartext password.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	if name == "" || email == "" || passwordHash == "" {
		return nil, errs.ErrInvalidInput
	}
	if role == "" {
		role = RoleUser
	}

	return &User{
		id:           uuid.NewUUID(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now().UTC(),
	}, nil
}

// Reconstruct restores a user from storage.
func Reconstruct(id uuid.UUID, name, email, passwordHash string, role Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

// ID returns the user ID.
func (u *User) ID() uuid.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the access role.
func (u *User) Role() Role {
	return u.role
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// CreatedAt returns the creation time.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}
