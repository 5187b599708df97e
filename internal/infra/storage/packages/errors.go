package packages

import "errors"

var (
	// ErrPackageNotFound is returned when the package does not exist
	ErrPackageNotFound = errors.New("packages.repository: package not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("packages.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("packages.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("packages.repository: failed to scan row")
)
