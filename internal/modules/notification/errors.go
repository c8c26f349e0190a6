package notification

import "errors"

var (
	ErrNotFound   = errors.New("notification not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)
