package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel is returned when the appointment is already
	// completed, cancelled or marked as a no-show.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidStatus is returned for an unknown status filter.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
