package taxonomy

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gosimple/slug"

	sharedvalidator "titledb-backend/internal/shared/validator"
)

const maxSlugLength = 50

// CreateTermRequest creates a new category or genre.
type CreateTermRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r CreateTermRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 256),
		),
		validation.Field(&r.Slug,
			validation.Length(0, maxSlugLength),
			validation.By(sharedvalidator.Slug),
		),
	)
}

// Term builds the entity, generating the slug from the name when the
// client did not supply one.
func (r CreateTermRequest) Term() Term {
	s := r.Slug
	if s == "" {
		s = slug.Make(r.Name)
		if len(s) > maxSlugLength {
			s = s[:maxSlugLength]
		}
	}
	return Term{Name: r.Name, Slug: s}
}
