package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the domain entity for a book record. AuthorID is an identifier
// reference to an Author, never a denormalized name. Books are immutable once
// created and are never deleted.
type Book struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Published int       `json:"published" db:"published"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`
	Genres    []string  `json:"genres" db:"genres"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
