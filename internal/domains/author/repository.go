package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Author data access operations.
type Repository interface {
	// FindOrCreate returns the author with the given name, creating it (with
	// born unset) if absent. The implementation must be atomic so that
	// concurrent calls with the same new name converge on a single record.
	FindOrCreate(ctx context.Context, name string) (*Author, error)

	// GetByID retrieves an author by id.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByName retrieves an author by exact name.
	// Errors: ErrAuthorNotFound.
	GetByName(ctx context.Context, name string) (*Author, error)

	// GetAll returns all author records.
	GetAll(ctx context.Context) ([]Author, error)

	// UpdateBorn sets the birth year of the author with the given name.
	// Errors: ErrAuthorNotFound.
	UpdateBorn(ctx context.Context, name string, born int) (*Author, error)
}
