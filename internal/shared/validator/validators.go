// Package validator holds the field validators applied on every write
// path that accepts a username, slug or release year.
package validator

import (
	"errors"
	"regexp"
	"time"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

var (
	ErrReservedUsername = errors.New("username 'me' is reserved")
	ErrInvalidUsername  = errors.New("username contains invalid characters")
	ErrInvalidSlug      = errors.New("slug may contain only letters, digits, hyphens and underscores")
	ErrYearInFuture     = errors.New("year must not be in the future")
	ErrYearNotAnInteger = errors.New("year must be an integer")
	ErrValueNotAString  = errors.New("value must be a string")
)

// Username rejects the literal "me" and any character outside [\w.@+-].
// Usable directly as an ozzo validation.By rule.
func Username(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return ErrValueNotAString
	}
	if s == "me" {
		return ErrReservedUsername
	}
	if !usernamePattern.MatchString(s) {
		return ErrInvalidUsername
	}
	return nil
}

// Slug validates the URL identifier used by categories and genres.
func Slug(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return ErrValueNotAString
	}
	if s == "" {
		return nil // emptiness is handled by Required where applicable
	}
	if !slugPattern.MatchString(s) {
		return ErrInvalidSlug
	}
	return nil
}

// Year rejects years after the current calendar year. The bound is
// recomputed on every call.
func Year(value interface{}) error {
	var year int
	switch v := value.(type) {
	case int:
		year = v
	case *int:
		if v == nil {
			return nil
		}
		year = *v
	default:
		return ErrYearNotAnInteger
	}

	if year > time.Now().Year() {
		return ErrYearInFuture
	}
	return nil
}
