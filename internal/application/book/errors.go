package book

import "errors"

var (
	// ErrBookNotFound occurs when no book matches the given ID
	ErrBookNotFound = errors.New("book not found")
)
