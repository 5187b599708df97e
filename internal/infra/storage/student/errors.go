package student

import "errors"

var (
	// ErrStudentNotFound is returned when the student does not exist
	ErrStudentNotFound = errors.New("student.repository: student not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("student.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("student.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("student.repository: failed to scan row")
)
