package taxonomy

import "errors"

var (
	ErrTermNotFound = errors.New("not found")
	ErrSlugExists   = errors.New("slug already exists")
)
