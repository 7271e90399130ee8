package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type fakeUserRepo struct {
	byID   map[uuid.UUID]*user.User
	byName map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:   make(map[uuid.UUID]*user.User),
		byName: make(map[string]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	if _, exists := f.byName[u.Username]; exists {
		return nil, user.ErrUsernameTaken
	}

	created := &user.User{
		ID:             uuid.New(),
		Username:       u.Username,
		FavouriteGenre: u.FavouriteGenre,
		CreatedAt:      time.Now(),
	}
	f.byID[created.ID] = created
	f.byName[created.Username] = created
	return created, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func setupUserService(t *testing.T) (user.Service, *fakeUserRepo, *jwt.Manager) {
	t.Helper()

	repo := newFakeUserRepo()
	tokens := jwt.NewManager("test-secret", time.Hour)

	svc, err := NewUserService(repo, tokens, "secret")
	require.NoError(t, err)

	return svc, repo, tokens
}

func TestCreateUser(t *testing.T) {
	svc, _, _ := setupUserService(t)
	ctx := context.Background()

	t.Run("persists username and favourite genre", func(t *testing.T) {
		genre := "refactoring"
		created, err := svc.Create(ctx, user.CreateUserRequest{
			Username:       "mluukkai",
			FavouriteGenre: &genre,
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "mluukkai", created.Username)
		require.NotNil(t, created.FavouriteGenre)
		assert.Equal(t, "refactoring", *created.FavouriteGenre)
	})

	t.Run("duplicate username fails", func(t *testing.T) {
		_, err := svc.Create(ctx, user.CreateUserRequest{Username: "mluukkai"})
		assert.ErrorIs(t, err, user.ErrUsernameTaken)
	})

	t.Run("too short username fails validation", func(t *testing.T) {
		_, err := svc.Create(ctx, user.CreateUserRequest{Username: "ab"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc, _, tokens := setupUserService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, user.CreateUserRequest{Username: "mluukkai"})
	require.NoError(t, err)

	t.Run("issues a token embedding username and id", func(t *testing.T) {
		token, err := svc.Login(ctx, user.LoginRequest{Username: "mluukkai", Password: "secret"})
		require.NoError(t, err)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, created.ID.String(), claims.UserID)
		assert.Equal(t, "mluukkai", claims.Username)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Username: "mluukkai", Password: "wrong"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown username fails the same way", func(t *testing.T) {
		_, err := svc.Login(ctx, user.LoginRequest{Username: "nobody", Password: "secret"})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
