package get_student_progress

import "errors"

var (
	// ErrStudentNotFound is returned when the student does not exist
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("usecase: internal error")
)
