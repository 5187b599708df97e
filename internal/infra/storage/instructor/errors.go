package instructor

import "errors"

var (
	// ErrInstructorNotFound is returned when the instructor does not exist
	ErrInstructorNotFound = errors.New("instructor.repository: instructor not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("instructor.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("instructor.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("instructor.repository: failed to scan row")
)
