package graphql

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/auth"
)

// Apollo-compatible extension codes, matching what clients of the original
// server expect.
const (
	codeUnauthenticated = "UNAUTHENTICATED"
	codeBadUserInput    = "BAD_USER_INPUT"
)

// resolverError carries a GraphQL extensions map alongside the message. The
// engine picks Extensions() up and serializes it into the error response.
type resolverError struct {
	message    string
	extensions map[string]interface{}
}

func (e *resolverError) Error() string { return e.message }

func (e *resolverError) Extensions() map[string]interface{} { return e.extensions }

func errUnauthenticated() error {
	return &resolverError{
		message:    "not authenticated",
		extensions: map[string]interface{}{"code": codeUnauthenticated},
	}
}

func errBadUserInput(message string, invalidArgs interface{}) error {
	ext := map[string]interface{}{"code": codeBadUserInput}
	if invalidArgs != nil {
		ext["invalidArgs"] = invalidArgs
	}
	return &resolverError{message: message, extensions: ext}
}

// mapMutationError translates domain errors into typed GraphQL failures.
// invalidArgs names the offending argument value, when there is one.
func mapMutationError(err error, invalidArgs interface{}) error {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return errUnauthenticated()
	case errors.Is(err, author.ErrAuthorNotFound):
		return errBadUserInput("Name not found", invalidArgs)
	case errors.Is(err, author.ErrInvalidName):
		return errBadUserInput("author name is invalid", invalidArgs)
	case errors.Is(err, user.ErrInvalidCredentials):
		return errBadUserInput("wrong credentials", nil)
	case errors.Is(err, user.ErrUsernameTaken):
		return errBadUserInput("creating the user failed: "+err.Error(), invalidArgs)
	}

	var verr validation.Errors
	if errors.As(err, &verr) {
		return errBadUserInput(verr.Error(), invalidArgs)
	}

	return err
}
