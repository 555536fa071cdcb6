package title

import "errors"

var (
	ErrTitleNotFound   = errors.New("title not found")
	ErrUnknownCategory = errors.New("category slug does not resolve to an existing category")
	ErrUnknownGenre    = errors.New("genre slug does not resolve to an existing genre")
)
