package services

import "errors"

// Failure taxonomy surfaced to the controllers. All are terminal for the
// requested operation; none are retried.
var (
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
)
