package appointment

import "errors"

var (
	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrAppointmentNotFound is returned when no appointment matches.
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrDuplicateSlot is returned when the unique index on
	// (staff_id, booking_date, start_time) rejects an insert. It is the
	// database-level backstop behind the in-transaction conflict check.
	ErrDuplicateSlot = errors.New("appointment.repository: slot already taken")
)
