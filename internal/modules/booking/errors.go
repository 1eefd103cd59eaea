package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrTimeConflict   = errors.New("booking time conflict")
	ErrNotFound       = errors.New("booking not found")
	ErrClientNotFound = errors.New("client not found")
)
