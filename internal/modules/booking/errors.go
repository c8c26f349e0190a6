package booking

import "errors"

var (
	ErrNotFound        = errors.New("booking not found")
	ErrListingNotFound = errors.New("service listing not found")
	ErrListingInactive = errors.New("service listing is not active")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidStatus   = errors.New("invalid status transition")
	ErrValidation      = errors.New("validation error")
)
