package location

import "errors"

var (
	// ErrLocationNotFound is returned when the location does not exist
	ErrLocationNotFound = errors.New("location.repository: location not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("location.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("location.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("location.repository: failed to scan row")
)
