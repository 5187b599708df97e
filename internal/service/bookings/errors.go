package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStudentNotFound is returned when the student does not exist
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidStatus is returned on an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidBookingDate is returned on a malformed booking date
	ErrInvalidBookingDate = errors.New("invalid booking date")

	// ErrInvalidBookingTime is returned on a malformed booking time
	ErrInvalidBookingTime = errors.New("invalid booking time")

	// ErrAccessDenied is returned when the user lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
