package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Author domain.
type Service interface {
	// All returns every author record.
	All(ctx context.Context) ([]Author, error)

	// GetByID resolves an author reference to its record.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// SetBornYear sets the birth year of the named author. Requires an
	// authenticated current-user context.
	// Errors: auth.ErrNotAuthenticated, ErrInvalidName, ErrAuthorNotFound.
	SetBornYear(ctx context.Context, name string, year int) (*Author, error)

	// BookCount returns the number of books whose author reference equals the
	// given author. Derived from book records, never stored.
	BookCount(ctx context.Context, authorID uuid.UUID) (int, error)
}
