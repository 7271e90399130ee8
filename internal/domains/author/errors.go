package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidName    = errors.New("author name is invalid")
)
