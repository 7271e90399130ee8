package service

import (
	"context"
	"errors"
	"fmt"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/shared/auth"
)

type bookService struct {
	books   book.Repository
	authors author.Repository
}

// NewBookService creates the book service. The author repository is needed
// for the find-or-create step of addBook and for author-name filtering.
func NewBookService(books book.Repository, authors author.Repository) book.Service {
	return &bookService{books: books, authors: authors}
}

func (s *bookService) All(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	// Author filter wins when both are supplied.
	if filter.Author != nil {
		a, err := s.authors.GetByName(ctx, *filter.Author)
		if err != nil {
			if errors.Is(err, author.ErrAuthorNotFound) {
				return []book.Book{}, nil
			}
			return nil, fmt.Errorf("resolve author filter %q: %w", *filter.Author, err)
		}
		return s.books.GetByAuthorID(ctx, a.ID)
	}

	if filter.Genre != nil {
		return s.books.GetByGenre(ctx, *filter.Genre)
	}

	return s.books.GetAll(ctx)
}

func (s *bookService) Count(ctx context.Context) (int, error) {
	return s.books.CountAll(ctx)
}

func (s *bookService) DistinctAuthorCount(ctx context.Context) (int, error) {
	return s.books.CountDistinctAuthors(ctx)
}

func (s *bookService) Add(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if auth.FromContext(ctx) == nil {
		return nil, auth.ErrNotAuthenticated
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.authors.FindOrCreate(ctx, req.Author)
	if err != nil {
		return nil, fmt.Errorf("resolve author %q: %w", req.Author, err)
	}

	created, err := s.books.Create(ctx, &book.Book{
		Title:     req.Title,
		Published: req.Published,
		AuthorID:  a.ID,
		Genres:    req.Genres,
	})
	if err != nil {
		return nil, fmt.Errorf("create book %q: %w", req.Title, err)
	}

	return created, nil
}
