package book

import "github.com/shelfshare/shelfshare/internal/domain/uuid"

// ListBooksQuery requests the annotated book listing.
type ListBooksQuery struct {
	// FilterUserID, when set, drives the per-book likedByUser annotation.
	FilterUserID uuid.UUID

	// BaseURL is the serving root used to build fully-qualified file URLs,
	// e.g. "https://host". Derived from the request when config leaves it empty.
	BaseURL string
}

// ListByCategoryQuery requests the listing restricted to one category.
type ListByCategoryQuery struct {
	Category     string
	FilterUserID uuid.UUID
	BaseURL      string
}
