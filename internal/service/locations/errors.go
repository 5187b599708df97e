package locations

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("location not found")

	// ErrAccessDenied is returned when the user lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
