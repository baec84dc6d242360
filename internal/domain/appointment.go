package domain

import (
	"time"

	"github.com/bookcore/appointment-service/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending             AppointmentStatus = "pending"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCancelledByCustomer AppointmentStatus = "cancelled_by_customer"
	StatusCancelledByBusiness AppointmentStatus = "cancelled_by_business"
	StatusNoShow              AppointmentStatus = "no_show"
)

// Appointment is a booked time window. StartTime/EndTime form the
// occupied interval for conflict purposes; buffers are not part of it.
type Appointment struct {
	ID         int64
	Reference  string // external UUID, safe to expose to integrations
	ServiceID  int64
	StaffID    *int64
	CustomerID *int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus

	// Denormalized service data kept for history
	ServiceName            string
	ServiceDurationMinutes int

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByCustomer &&
		a.Status != StatusCancelledByBusiness &&
		a.Status != StatusNoShow
}

// CanBeCancelled reports whether cancellation is still allowed.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// DayFilter selects the appointments consulted for conflict checks:
// same date, and either the same staff member or the same customer.
type DayFilter struct {
	Date       time.Time
	StaffID    *int64
	CustomerID *int64
}

// HasParty reports whether at least one of staff/customer is set.
// With neither set there is nobody to conflict with.
func (f DayFilter) HasParty() bool {
	return f.StaffID != nil || f.CustomerID != nil
}
