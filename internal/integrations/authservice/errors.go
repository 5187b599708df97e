package authservice

import "errors"

var (
	// ErrProfileNotFound is returned when the user has no profile row
	ErrProfileNotFound = errors.New("user has no profile")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse is returned when the service response cannot be parsed
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrServiceDegraded is returned when the auth service is unreachable.
	// Callers treat degraded lookups as the non-privileged staff role.
	ErrServiceDegraded = errors.New("authservice unavailable: graceful degradation applied")
)
