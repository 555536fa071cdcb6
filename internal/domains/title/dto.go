package title

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"titledb-backend/internal/domains/taxonomy"
	sharedvalidator "titledb-backend/internal/shared/validator"
)

// TitleResponse is the read representation: full genre/category objects
// plus the derived rating (null when the title has no reviews).
type TitleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Rating      *int            `json:"rating"`
	Description *string         `json:"description"`
	Genre       []taxonomy.Term `json:"genre"`
	Category    *taxonomy.Term  `json:"category"`
}

// CreateTitleRequest takes genre as a set of slugs and category as a
// single slug, both resolved against existing rows.
type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	Category    string   `json:"category"`
}

func (r CreateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.By(sharedvalidator.Year),
		),
		validation.Field(&r.Genre,
			validation.NotNil.Error("genre is required"),
			validation.Each(validation.By(sharedvalidator.Slug)),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(sharedvalidator.Slug),
		),
	)
}

// UpdateTitleRequest supports partial updates; nil fields are unchanged.
// A nil Genre slice means "leave associations alone", an empty one
// clears them.
type UpdateTitleRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	Category    *string  `json:"category"`
}

func (r UpdateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		// Length skips the empty string, so a present-but-empty name is
		// rejected through the pointer directly.
		validation.Field(&r.Name, validation.By(func(value interface{}) error {
			s, _ := value.(*string)
			if s == nil {
				return nil
			}
			if *s == "" {
				return validation.NewError("validation_required", "name must not be empty")
			}
			if len(*s) > 500 {
				return validation.NewError("validation_length", "the length must be no more than 500")
			}
			return nil
		})),
		validation.Field(&r.Year, validation.By(sharedvalidator.Year)),
		validation.Field(&r.Genre, validation.Each(validation.By(sharedvalidator.Slug))),
		validation.Field(&r.Category, validation.By(func(value interface{}) error {
			s, _ := value.(*string)
			if s == nil {
				return nil
			}
			return sharedvalidator.Slug(*s)
		})),
	)
}

// ListTitlesFilter is the structured filter set for title listings.
type ListTitlesFilter struct {
	Name     string // partial, case-insensitive
	Category string // exact slug
	Genre    string // exact slug
	Year     *int   // exact
}
