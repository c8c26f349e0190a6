package message

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")
	ErrBadRecipient    = errors.New("recipient is not a booking participant")
	ErrValidation      = errors.New("validation error")
)
