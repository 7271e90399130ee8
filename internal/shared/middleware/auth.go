package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
	"library-backend/pkg/jwt"
)

// UserLookup resolves a token's user id to the stored record.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// Auth derives the current-user context from the Authorization header.
//
// No header: the request proceeds anonymously. A header that is present but
// malformed, unverifiable, expired, or naming an unknown user is rejected
// with 401 before any resolver runs; it is never silently ignored.
func Auth(tokens *jwt.Manager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user ID in token"})
			c.Abort()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			c.Abort()
			return
		}

		// Resolvers only see context.Context, so the user goes on the
		// request context rather than gin's keys.
		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), u))
		c.Set("userID", u.ID)

		c.Next()
	}
}
