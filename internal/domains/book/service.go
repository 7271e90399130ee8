package book

import "context"

// Service defines business logic for the Book domain.
type Service interface {
	// All returns book records, optionally narrowed by filter. An author
	// filter naming an unknown author yields an empty list, not an error.
	All(ctx context.Context, filter Filter) ([]Book, error)

	// Count returns the total number of book records.
	Count(ctx context.Context) (int, error)

	// DistinctAuthorCount returns the number of distinct author references
	// across all books.
	DistinctAuthorCount(ctx context.Context) (int, error)

	// Add creates a book, resolving the author name to an identifier
	// reference and creating the author (born unset) if absent. Requires an
	// authenticated current-user context.
	// Errors: auth.ErrNotAuthenticated, validation errors.
	Add(ctx context.Context, req CreateBookRequest) (*Book, error)
}
