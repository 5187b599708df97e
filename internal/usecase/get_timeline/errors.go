package get_timeline

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidMonth is returned when the month is not YYYY-MM
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("usecase: internal error")
)
