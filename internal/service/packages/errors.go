package packages

import "errors"

var (
	// ErrPackageNotFound is returned when the package does not exist
	ErrPackageNotFound = errors.New("package not found")

	// ErrMaterialNotFound is returned when the material does not exist
	ErrMaterialNotFound = errors.New("material not found")

	// ErrEntryNotFound is returned when the curriculum entry does not exist
	ErrEntryNotFound = errors.New("curriculum entry not found")

	// ErrEntryMismatch is returned when the entry belongs to another package
	ErrEntryMismatch = errors.New("curriculum entry belongs to another package")

	// ErrAccessDenied is returned when the user lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
