package provider

import "errors"

var (
	ErrNotFound      = errors.New("provider profile not found")
	ErrAlreadyExists = errors.New("provider profile already exists")
)
