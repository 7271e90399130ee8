package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a user repository backed by pgx.
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	query := `
        INSERT INTO users (username, favourite_genre)
        VALUES ($1, $2)
        RETURNING id, username, favourite_genre, created_at
    `

	var created user.User
	err := r.pool.QueryRow(ctx, query, u.Username, u.FavouriteGenre).Scan(
		&created.ID,
		&created.Username,
		&created.FavouriteGenre,
		&created.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `
        SELECT id, username, favourite_genre, created_at
        FROM users
        WHERE username = $1
    `

	var u user.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.FavouriteGenre,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
        SELECT id, username, favourite_genre, created_at
        FROM users
        WHERE id = $1
    `

	var u user.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.FavouriteGenre,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}
