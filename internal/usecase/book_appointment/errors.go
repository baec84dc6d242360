package book_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the booking date lies in the past.
	ErrInvalidDate = errors.New("invalid booking date")

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

	// ErrSlotNotAvailable is returned when the requested window is not
	// one of the date's generated slots: closed weekday, holiday, or a
	// start/end pair that does not match slot boundaries.
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrStaffConflict is returned when the staff member already has
	// an overlapping appointment.
	ErrStaffConflict = errors.New("staff unavailable")

	// ErrCustomerConflict is returned when the customer already has an
	// overlapping appointment.
	ErrCustomerConflict = errors.New("you already have an appointment at this time")

	// ErrSlotConflict is returned when the slot was taken by a
	// concurrent booking.
	ErrSlotConflict = errors.New("slot unavailable")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("usecase: internal error")
)
