// Package auth carries the current-user identity of a single request.
// The bearer-token middleware stores the resolved user here; services read it
// to gate mutations. An absent user means the request is anonymous.
package auth

import (
	"context"
	"errors"

	"library-backend/internal/domains/user"
)

// ErrNotAuthenticated is returned by operations that require a current-user
// context when the request is anonymous.
var ErrNotAuthenticated = errors.New("not authenticated")

type contextKey struct{}

// WithUser attaches the authenticated user to the request context.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the authenticated user, or nil for anonymous requests.
func FromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(contextKey{}).(*user.User)
	return u
}
