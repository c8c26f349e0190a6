package catalog

import "errors"

var (
	ErrNotFound   = errors.New("listing not found")
	ErrForbidden  = errors.New("forbidden")
	ErrNameTaken  = errors.New("category name already exists")
	ErrValidation = errors.New("validation error")
)
