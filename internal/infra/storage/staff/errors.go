package staff

import "errors"

var (
	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("staff.repository: failed to scan row")

	// ErrStaffNotFound is returned when no staff member matches the id.
	ErrStaffNotFound = errors.New("staff.repository: staff not found")
)
