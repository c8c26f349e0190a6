package review

import "errors"

var (
	ErrNotFound            = errors.New("review not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrForbidden           = errors.New("forbidden")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrConflict            = errors.New("review already exists for this booking")
	ErrValidation          = errors.New("validation error")
)
