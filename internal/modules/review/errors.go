package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 0 and 5")
	ErrEmptyText       = errors.New("title and body are required")
	ErrAlreadyReviewed = errors.New("already reviewed")
	ErrNotFound        = errors.New("not_found")
	ErrForbidden       = errors.New("forbidden")
)
