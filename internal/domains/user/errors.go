package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUsernameTaken           = errors.New("a user with that username already exists")
	ErrEmailTaken              = errors.New("a user with that email already exists")
	ErrInvalidConfirmationCode = errors.New("invalid or expired confirmation code")
)
