package instructors

import "errors"

var (
	// ErrInstructorNotFound is returned when the instructor does not exist
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrAccessDenied is returned when the user lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
