package user

import "errors"

var (
	// ErrEmailAlreadyExists occurs when signing up with an email that is taken
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound occurs when no user matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials occurs when the password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")
)
