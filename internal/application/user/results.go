package user

import "github.com/shelfshare/shelfshare/internal/domain/user"

// Result is the outcome of a single-user operation.
type Result struct {
	User *user.User
}

// UsersListResult is the outcome of a list operation.
type UsersListResult struct {
	Users []*user.User
}
