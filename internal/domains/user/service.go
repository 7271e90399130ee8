package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the User domain.
type Service interface {
	// Create persists a new user. No authentication required.
	// Errors: ErrUsernameTaken, validation errors.
	Create(ctx context.Context, req CreateUserRequest) (*User, error)

	// Login checks the shared credential and issues a signed token embedding
	// the user's username and id.
	// Errors: ErrInvalidCredentials for an unknown username or wrong password.
	Login(ctx context.Context, req LoginRequest) (string, error)

	// GetByID resolves a user id to the stored record.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
