package material

import "errors"

var (
	// ErrMaterialNotFound is returned when the material does not exist
	ErrMaterialNotFound = errors.New("material.repository: material not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("material.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("material.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("material.repository: failed to scan row")
)
