package curriculum

import "errors"

var (
	// ErrEntryNotFound is returned when the curriculum entry does not exist
	ErrEntryNotFound = errors.New("curriculum.repository: curriculum entry not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("curriculum.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("curriculum.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("curriculum.repository: failed to scan row")
)
