package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager

	// bcrypt hash of the shared login credential. Hashed once at construction
	// so no plaintext comparison happens per request.
	passwordHash []byte
}

// NewUserService creates the user service. loginPassword is the single shared
// credential every user logs in with; a per-user scheme is a known gap.
func NewUserService(repo user.Repository, tokens *jwt.Manager, loginPassword string) (user.Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(loginPassword), 12)
	if err != nil {
		return nil, fmt.Errorf("hash login password: %w", err)
	}

	return &userService{
		repo:         repo,
		tokens:       tokens,
		passwordHash: hash,
	}, nil
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &user.User{
		Username:       req.Username,
		FavouriteGenre: req.FavouriteGenre,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create user %q: %w", req.Username, err)
	}

	return created, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", user.ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up user %q: %w", req.Username, err)
	}

	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) != nil {
		return "", user.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID.String(), u.Username)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}
