package testutil

import (
	"testing"

	"github.com/shelfshare/shelfshare/internal/domain/book"
	"github.com/shelfshare/shelfshare/internal/domain/user"
)

// NewTestUser creates a reader account with a pre-hashed placeholder password.
func NewTestUser(t *testing.T, name, email string) *user.User {
	t.Helper()

	u, err := user.NewUser(name, email, "test-password-hash", user.RoleUser)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u
}

// NewTestAdmin creates an admin account.
func NewTestAdmin(t *testing.T, name, email string) *user.User {
	t.Helper()

	u, err := user.NewUser(name, email, "test-password-hash", user.RoleAdmin)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	return u
}

// NewTestBook creates a book with stored file paths under the given title.
func NewTestBook(t *testing.T, title, category string) *book.Book {
	t.Helper()

	b, err := book.NewBook(title, category, "books/"+title+".pdf", "covers/"+title+".jpg")
	if err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}
	return b
}
