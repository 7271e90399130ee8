package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines User data access operations.
type Repository interface {
	// Create inserts a new user. The store assigns the id.
	// Errors: ErrUsernameTaken on a uniqueness violation.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByUsername retrieves a user by exact username.
	// Errors: ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID retrieves a user by id. Used by the authentication gate to
	// resolve token claims to a stored principal.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
