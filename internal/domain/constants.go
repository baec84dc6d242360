package domain

// Default configuration values
const (
	DefaultHorizonDays     = 30
	MaxHorizonDays         = 365
	DefaultDurationMinutes = 20
)

// Business validation constants
const (
	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 1440 // full day
	MaxReasonLength        = 500
	MaxNotesLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that do not occupy a slot.
// Used when filtering appointments for conflict checks and counts.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByCustomer,
	StatusCancelledByBusiness,
	StatusNoShow,
}

// ActiveStatuses lists statuses that keep a slot occupied.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
