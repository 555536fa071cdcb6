package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"titledb-backend/internal/shared/auth"
	"titledb-backend/internal/shared/validator"
)

const (
	maxUsernameLength = 256
	maxEmailLength    = 254
	maxNameLength     = 150
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, maxUsernameLength),
			validation.By(validator.Username),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(1, maxEmailLength),
			is.EmailFormat.Error("must be a valid email address"),
		),
	)
}

type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.ConfirmationCode, validation.Required.Error("confirmation_code is required")),
	)
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, maxUsernameLength),
			validation.By(validator.Username),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(1, maxEmailLength),
			is.EmailFormat.Error("must be a valid email address"),
		),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
		validation.Field(&r.Role, validation.By(validRole)),
	)
}

type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("email must not be empty"),
			validation.Length(0, maxEmailLength),
			is.EmailFormat.Error("must be a valid email address"),
		),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
		validation.Field(&r.Role, validation.By(validRole)),
	)
}

func validRole(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return validation.NewError("validation_role", "role must be a string")
	}
	if s == "" {
		return nil
	}
	if !auth.Role(s).Valid() {
		return validation.NewError("validation_role", "must be one of: user, moderator, admin")
	}
	return nil
}
