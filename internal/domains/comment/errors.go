package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)
