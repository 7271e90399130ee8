package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a principal for the authentication gate. It has no relationship to
// books or authors. There is no per-user password: login checks a single
// shared credential (see the service layer).
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	FavouriteGenre *string   `json:"favourite_genre" db:"favourite_genre"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
