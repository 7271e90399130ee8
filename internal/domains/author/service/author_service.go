package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared/auth"
)

type authorService struct {
	authors author.Repository
	books   book.Repository
}

// NewAuthorService creates the author service. The book repository is needed
// for the derived per-author book count.
func NewAuthorService(authors author.Repository, books book.Repository) author.Service {
	return &authorService{authors: authors, books: books}
}

func (s *authorService) All(ctx context.Context) ([]author.Author, error) {
	return s.authors.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.authors.GetByID(ctx, id)
}

func (s *authorService) SetBornYear(ctx context.Context, name string, year int) (*author.Author, error) {
	if auth.FromContext(ctx) == nil {
		return nil, auth.ErrNotAuthenticated
	}
	if name == "" {
		return nil, author.ErrInvalidName
	}

	updated, err := s.authors.UpdateBorn(ctx, name, year)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *authorService) BookCount(ctx context.Context, authorID uuid.UUID) (int, error) {
	count, err := s.books.CountByAuthor(ctx, authorID)
	if err != nil {
		return 0, fmt.Errorf("count books for author %s: %w", authorID, err)
	}
	return count, nil
}
