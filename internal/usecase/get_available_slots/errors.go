package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrServiceNotFound is returned when the service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceInactive is returned when the service is disabled.
	ErrServiceInactive = errors.New("service is not active")

	// ErrStaffNotFound is returned when the staff member does not
	// exist or is inactive.
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotAssigned is returned when the staff member is not
	// assigned to the requested service.
	ErrStaffNotAssigned = errors.New("staff member is not assigned to this service")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("usecase: internal error")
)
