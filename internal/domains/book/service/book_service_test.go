package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

type fakeAuthorRepo struct {
	authors map[string]*author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[string]*author.Author)}
}

func (f *fakeAuthorRepo) FindOrCreate(_ context.Context, name string) (*author.Author, error) {
	if a, ok := f.authors[name]; ok {
		return a, nil
	}
	a := &author.Author{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.authors[name] = a
	return a, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	for _, a := range f.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) GetByName(_ context.Context, name string) (*author.Author, error) {
	a, ok := f.authors[name]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (f *fakeAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	all := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		all = append(all, *a)
	}
	return all, nil
}

func (f *fakeAuthorRepo) UpdateBorn(_ context.Context, name string, born int) (*author.Author, error) {
	a, ok := f.authors[name]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	b := born
	a.Born = &b
	return a, nil
}

type fakeBookRepo struct {
	books []book.Book
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.books = append(f.books, created)
	return &created, nil
}

func (f *fakeBookRepo) GetAll(_ context.Context) ([]book.Book, error) {
	return append([]book.Book{}, f.books...), nil
}

func (f *fakeBookRepo) GetByAuthorID(_ context.Context, authorID uuid.UUID) ([]book.Book, error) {
	out := []book.Book{}
	for _, b := range f.books {
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookRepo) GetByGenre(_ context.Context, genre string) ([]book.Book, error) {
	out := []book.Book{}
	for _, b := range f.books {
		for _, g := range b.Genres {
			if g == genre {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookRepo) CountAll(_ context.Context) (int, error) {
	return len(f.books), nil
}

func (f *fakeBookRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	n := 0
	for _, b := range f.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookRepo) CountDistinctAuthors(_ context.Context) (int, error) {
	seen := make(map[uuid.UUID]struct{})
	for _, b := range f.books {
		seen[b.AuthorID] = struct{}{}
	}
	return len(seen), nil
}

func authedContext() context.Context {
	return auth.WithUser(context.Background(), &user.User{
		ID:       uuid.New(),
		Username: "tester",
	})
}

func strPtr(s string) *string { return &s }

// seedLibrary loads the classic seed data used across the filter tests.
func seedLibrary(t *testing.T, svc book.Service) {
	t.Helper()
	ctx := authedContext()

	seed := []book.CreateBookRequest{
		{Title: "Clean Code", Published: 2008, Author: "Robert Martin", Genres: []string{"refactoring"}},
		{Title: "Agile software development", Published: 2002, Author: "Robert Martin", Genres: []string{"agile", "patterns", "design"}},
		{Title: "Refactoring, edition 2", Published: 2018, Author: "Martin Fowler", Genres: []string{"refactoring"}},
		{Title: "Refactoring to patterns", Published: 2008, Author: "Joshua Kerievsky", Genres: []string{"refactoring", "patterns"}},
		{Title: "Practical Object-Oriented Design", Published: 2012, Author: "Sandi Metz", Genres: []string{"refactoring", "design"}},
	}
	for _, req := range seed {
		_, err := svc.Add(ctx, req)
		require.NoError(t, err)
	}
}

func TestAddBook(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		books := &fakeBookRepo{}
		svc := NewBookService(books, newFakeAuthorRepo())

		_, err := svc.Add(context.Background(), book.CreateBookRequest{
			Title: "Clean Code", Published: 2008, Author: "Robert Martin",
		})
		assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
		assert.Empty(t, books.books)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		svc := NewBookService(&fakeBookRepo{}, newFakeAuthorRepo())

		_, err := svc.Add(authedContext(), book.CreateBookRequest{
			Author: "Robert Martin", Published: 2008,
		})
		assert.Error(t, err)
	})

	t.Run("creates the author when unknown", func(t *testing.T) {
		authors := newFakeAuthorRepo()
		svc := NewBookService(&fakeBookRepo{}, authors)

		created, err := svc.Add(authedContext(), book.CreateBookRequest{
			Title: "Pimeyden tango", Published: 1997, Author: "Reijo Mäki", Genres: []string{"crime"},
		})
		require.NoError(t, err)

		a, err := authors.GetByName(context.Background(), "Reijo Mäki")
		require.NoError(t, err)
		assert.Equal(t, a.ID, created.AuthorID)
		assert.Nil(t, a.Born)
	})

	t.Run("reuses an existing author", func(t *testing.T) {
		authors := newFakeAuthorRepo()
		svc := NewBookService(&fakeBookRepo{}, authors)
		ctx := authedContext()

		first, err := svc.Add(ctx, book.CreateBookRequest{
			Title: "Clean Code", Published: 2008, Author: "Robert Martin",
		})
		require.NoError(t, err)

		second, err := svc.Add(ctx, book.CreateBookRequest{
			Title: "Agile software development", Published: 2002, Author: "Robert Martin",
		})
		require.NoError(t, err)

		assert.Equal(t, first.AuthorID, second.AuthorID)
		assert.Len(t, authors.authors, 1)
	})
}

func TestAllBooks(t *testing.T) {
	svc := NewBookService(&fakeBookRepo{}, newFakeAuthorRepo())
	seedLibrary(t, svc)
	ctx := context.Background()

	t.Run("no filter returns everything", func(t *testing.T) {
		all, err := svc.All(ctx, book.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("author filter", func(t *testing.T) {
		all, err := svc.All(ctx, book.Filter{Author: strPtr("Robert Martin")})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("unknown author yields an empty list", func(t *testing.T) {
		all, err := svc.All(ctx, book.Filter{Author: strPtr("Nobody")})
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("genre filter", func(t *testing.T) {
		all, err := svc.All(ctx, book.Filter{Genre: strPtr("refactoring")})
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("author filter wins over genre", func(t *testing.T) {
		all, err := svc.All(ctx, book.Filter{
			Author: strPtr("Martin Fowler"),
			Genre:  strPtr("patterns"),
		})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Refactoring, edition 2", all[0].Title)
	})
}

func TestCounts(t *testing.T) {
	svc := NewBookService(&fakeBookRepo{}, newFakeAuthorRepo())
	seedLibrary(t, svc)
	ctx := context.Background()

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	distinct, err := svc.DistinctAuthorCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, distinct)
}
