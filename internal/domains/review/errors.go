package review

import "errors"

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("you have already reviewed this title")
	ErrForbidden       = errors.New("you do not have permission to perform this action")
)
