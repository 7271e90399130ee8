package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity for an author record. Born is nil until set via
// the editAuthor operation; authors created implicitly by addBook start with
// it unset. Authors are never deleted.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Born      *int      `json:"born" db:"born"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
