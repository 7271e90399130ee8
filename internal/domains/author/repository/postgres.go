package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates an author repository backed by pgx.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

// FindOrCreate upserts on the unique name. The no-op DO UPDATE makes
// RETURNING yield the existing row on conflict, so two concurrent addBook
// calls naming the same new author get the same record.
func (r *postgresRepository) FindOrCreate(ctx context.Context, name string) (*author.Author, error) {
	query := `
        INSERT INTO authors (name)
        VALUES ($1)
        ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id, name, born, created_at, updated_at
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&a.ID,
		&a.Name,
		&a.Born,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to find or create author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, born, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Born,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*author.Author, error) {
	query := `
        SELECT id, name, born, created_at, updated_at
        FROM authors
        WHERE name = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&a.ID,
		&a.Name,
		&a.Born,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, born, created_at, updated_at
        FROM authors
        ORDER BY created_at
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Born, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) UpdateBorn(ctx context.Context, name string, born int) (*author.Author, error) {
	query := `
        UPDATE authors
        SET born = $2, updated_at = now()
        WHERE name = $1
        RETURNING id, name, born, created_at, updated_at
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, name, born).Scan(
		&a.ID,
		&a.Name,
		&a.Born,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author born year: %w", err)
	}

	return &a, nil
}
