package models

import (
	"errors"

	"github.com/bookcore/appointment-service/internal/domain"
)

// ErrInvalidStatus is returned for an unknown status string.
var ErrInvalidStatus = errors.New("invalid appointment status")

// Who initiated a cancellation.
const (
	CancelledByCustomer = "customer"
	CancelledByBusiness = "business"
)

// CancelAppointmentRequest asks to cancel an appointment.
type CancelAppointmentRequest struct {
	CancelledBy string  `json:"cancelledBy"` // "customer" or "business"
	Reason      *string `json:"reason,omitempty"`
}

// GetCustomerAppointmentsRequest lists a customer's appointments.
type GetCustomerAppointmentsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// AppointmentResponse is the outward appointment representation.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`   // "10:30"
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
	CancelReason    *string `json:"cancellationReason,omitempty"`
	CancelledAt     *string `json:"cancelledAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment to the response
// representation.
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              appt.ID,
		Reference:       appt.Reference,
		ServiceID:       appt.ServiceID,
		StaffID:         appt.StaffID,
		CustomerID:      appt.CustomerID,
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		EndTime:         appt.EndTime.String(),
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		DurationMinutes: appt.ServiceDurationMinutes,
		Notes:           appt.Notes,
		CancelReason:    appt.CancellationReason,
		CreatedAt:       appt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if appt.CancelledAt != nil {
		cancelledAt := appt.CancelledAt.Format("2006-01-02T15:04:05Z07:00")
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointments converts a list of domain appointments.
func FromDomainAppointments(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]*AppointmentResponse, 0, len(appts))
	for _, appt := range appts {
		list = append(list, FromDomainAppointment(appt))
	}
	return &AppointmentListResponse{Appointments: list, Total: len(list)}
}

// ToDomainStatus parses a status filter string.
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByCustomer,
		domain.StatusCancelledByBusiness,
		domain.StatusNoShow:
		return domain.AppointmentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
