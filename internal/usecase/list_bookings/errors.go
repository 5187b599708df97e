package list_bookings

import "errors"

var (
	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when a date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidStatus is returned on an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("usecase: internal error")
)
