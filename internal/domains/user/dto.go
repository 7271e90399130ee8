package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest carries the createUser mutation input.
type CreateUserRequest struct {
	Username       string  `json:"username"`
	FavouriteGenre *string `json:"favourite_genre,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be 3-50 characters"),
		),
		validation.Field(&r.FavouriteGenre, validation.Length(0, 100)),
	)
}

// LoginRequest carries the login mutation input.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}
