package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest carries the addBook mutation input. Author is a name;
// the service resolves it to an identifier reference, creating the author
// if absent.
type CreateBookRequest struct {
	Title     string   `json:"title"`
	Published int      `json:"published"`
	Author    string   `json:"author"`
	Genres    []string `json:"genres"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Published, validation.Min(0).Error("published year must not be negative")),
		validation.Field(&r.Genres, validation.Each(validation.Required.Error("genres must not contain empty strings"))),
	)
}

// Filter narrows allBooks. Only one filter is honored per call; when both are
// set, Author takes precedence.
type Filter struct {
	Author *string
	Genre  *string
}
