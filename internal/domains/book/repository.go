package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Book data access operations. The derived counts are
// recomputed from book rows on every call (with a short-TTL cache in front);
// they are never stored.
type Repository interface {
	// Create inserts a new book. The store assigns the id.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetAll returns all book records.
	GetAll(ctx context.Context) ([]Book, error)

	// GetByAuthorID returns all books whose author reference equals the id.
	GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// GetByGenre returns all books whose genre list contains the tag
	// (case-sensitive exact match).
	GetByGenre(ctx context.Context, genre string) ([]Book, error)

	// CountAll returns the total number of book records.
	CountAll(ctx context.Context) (int, error)

	// CountByAuthor returns the number of books referencing the author.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)

	// CountDistinctAuthors returns the number of distinct author references
	// across all books. Authors with zero books are not counted.
	CountDistinctAuthors(ctx context.Context) (int, error)
}
