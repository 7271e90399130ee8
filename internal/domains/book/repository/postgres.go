package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

// postgresRepository implements book.Repository with a cache-aside layer in
// front of the derived counts. Cache failures degrade to the database; they
// are logged, never surfaced.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a book repository backed by pgx and a cache.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

// Cache key constants
const (
	bookCountKey          = "books:count"
	distinctAuthorsKey    = "books:distinct-authors"
	authorBookCountPrefix = "books:count:author:"
	countTTL              = 5 * time.Minute
)

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (title, published, author_id, genres)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, published, author_id, genres, created_at
    `

	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Title, b.Published, b.AuthorID, genres).Scan(
		&created.ID,
		&created.Title,
		&created.Published,
		&created.AuthorID,
		&created.Genres,
		&created.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidateCounts(ctx, created.AuthorID)

	return &created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `
        SELECT id, title, published, author_id, genres, created_at
        FROM books
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
        SELECT id, title, published, author_id, genres, created_at
        FROM books
        WHERE author_id = $1
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by author: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genre string) ([]book.Book, error) {
	// @> is array containment; case-sensitive exact tag match.
	query := `
        SELECT id, title, published, author_id, genres, created_at
        FROM books
        WHERE genres @> ARRAY[$1]::text[]
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query, genre)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by genre: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) CountAll(ctx context.Context) (int, error) {
	return r.cachedCount(ctx, bookCountKey, `SELECT COUNT(*) FROM books`)
}

func (r *postgresRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	cacheKey := authorBookCountPrefix + authorID.String()

	var cached int
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, count, countTTL); err != nil {
		logger.Warn("cache set failed", err)
	}

	return count, nil
}

func (r *postgresRepository) CountDistinctAuthors(ctx context.Context) (int, error) {
	return r.cachedCount(ctx, distinctAuthorsKey, `SELECT COUNT(DISTINCT author_id) FROM books`)
}

func (r *postgresRepository) cachedCount(ctx context.Context, cacheKey, query string) (int, error) {
	var cached int
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, count, countTTL); err != nil {
		logger.Warn("cache set failed", err)
	}

	return count, nil
}

func (r *postgresRepository) invalidateCounts(ctx context.Context, authorID uuid.UUID) {
	err := r.cache.Delete(ctx,
		bookCountKey,
		distinctAuthorsKey,
		authorBookCountPrefix+authorID.String(),
	)
	if err != nil {
		logger.Warn("cache invalidation failed", err)
	}
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBooks(rows rowScanner) ([]book.Book, error) {
	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Published, &b.AuthorID, &b.Genres, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}
