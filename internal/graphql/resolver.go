package graphql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// Resolver is the root resolver. It holds the domain services and delegates
// all field resolution to them; the authentication gate has already attached
// the current user (if any) to the request context by the time a resolver
// runs.
type Resolver struct {
	books   book.Service
	authors author.Service
	users   user.Service
}

func NewResolver(books book.Service, authors author.Service, users user.Service) *Resolver {
	return &Resolver{books: books, authors: authors, users: users}
}

// NewSchema parses the schema and binds it to the resolver. Panics on a
// schema/resolver mismatch, which is a programming error.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}

// ========================================
// QUERY
// ========================================

func (r *Resolver) BookCount(ctx context.Context) (int32, error) {
	count, err := r.books.Count(ctx)
	return int32(count), err
}

func (r *Resolver) AuthorCount(ctx context.Context) (int32, error) {
	count, err := r.books.DistinctAuthorCount(ctx)
	return int32(count), err
}

func (r *Resolver) AllBooks(ctx context.Context, args struct {
	Author *string
	Genre  *string
}) ([]*bookResolver, error) {
	books, err := r.books.All(ctx, book.Filter{Author: args.Author, Genre: args.Genre})
	if err != nil {
		return nil, err
	}

	resolvers := make([]*bookResolver, 0, len(books))
	for i := range books {
		resolvers = append(resolvers, &bookResolver{b: books[i], root: r})
	}
	return resolvers, nil
}

func (r *Resolver) AllAuthors(ctx context.Context) ([]*authorResolver, error) {
	authors, err := r.authors.All(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*authorResolver, 0, len(authors))
	for i := range authors {
		resolvers = append(resolvers, &authorResolver{a: authors[i], root: r})
	}
	return resolvers, nil
}

func (r *Resolver) Me(ctx context.Context) *userResolver {
	u := auth.FromContext(ctx)
	if u == nil {
		return nil
	}
	return &userResolver{u: *u}
}

// ========================================
// MUTATION
// ========================================

func (r *Resolver) AddBook(ctx context.Context, args struct {
	Title     string
	Published int32
	Author    string
	Genres    []string
}) (*bookResolver, error) {
	created, err := r.books.Add(ctx, book.CreateBookRequest{
		Title:     args.Title,
		Published: int(args.Published),
		Author:    args.Author,
		Genres:    args.Genres,
	})
	if err != nil {
		return nil, mapMutationError(err, args.Title)
	}

	return &bookResolver{b: *created, root: r}, nil
}

func (r *Resolver) EditAuthor(ctx context.Context, args struct {
	Name string
	Year int32
}) (*authorResolver, error) {
	updated, err := r.authors.SetBornYear(ctx, args.Name, int(args.Year))
	if err != nil {
		return nil, mapMutationError(err, args.Name)
	}

	return &authorResolver{a: *updated, root: r}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct {
	Username       string
	FavouriteGenre *string
}) (*userResolver, error) {
	created, err := r.users.Create(ctx, user.CreateUserRequest{
		Username:       args.Username,
		FavouriteGenre: args.FavouriteGenre,
	})
	if err != nil {
		return nil, mapMutationError(err, args.Username)
	}

	return &userResolver{u: *created}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Username string
	Password string
}) (*tokenResolver, error) {
	token, err := r.users.Login(ctx, user.LoginRequest{
		Username: args.Username,
		Password: args.Password,
	})
	if err != nil {
		return nil, mapMutationError(err, args.Username)
	}

	return &tokenResolver{value: token}, nil
}

// ========================================
// TYPE RESOLVERS
// ========================================

type bookResolver struct {
	b    book.Book
	root *Resolver
}

func (r *bookResolver) ID() graphql.ID { return graphql.ID(r.b.ID.String()) }

func (r *bookResolver) Title() string { return r.b.Title }

func (r *bookResolver) Published() int32 { return int32(r.b.Published) }

func (r *bookResolver) Genres() []string {
	if r.b.Genres == nil {
		return []string{}
	}
	return r.b.Genres
}

// Author resolves the identifier reference to the full Author record.
func (r *bookResolver) Author(ctx context.Context) (*authorResolver, error) {
	a, err := r.root.authors.GetByID(ctx, r.b.AuthorID)
	if err != nil {
		return nil, err
	}
	return &authorResolver{a: *a, root: r.root}, nil
}

type authorResolver struct {
	a    author.Author
	root *Resolver
}

func (r *authorResolver) ID() graphql.ID { return graphql.ID(r.a.ID.String()) }

func (r *authorResolver) Name() string { return r.a.Name }

func (r *authorResolver) Born() *int32 {
	if r.a.Born == nil {
		return nil
	}
	born := int32(*r.a.Born)
	return &born
}

// BookCount is derived from book records on demand, never stored.
func (r *authorResolver) BookCount(ctx context.Context) (int32, error) {
	count, err := r.root.authors.BookCount(ctx, r.a.ID)
	return int32(count), err
}

type userResolver struct {
	u user.User
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.u.ID.String()) }

func (r *userResolver) Username() string { return r.u.Username }

func (r *userResolver) FavouriteGenre() *string { return r.u.FavouriteGenre }

type tokenResolver struct {
	value string
}

func (r *tokenResolver) Value() string { return r.value }
