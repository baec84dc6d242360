package notifier

// Event types sent to the notification endpoint.
const (
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentCancelled = "appointment.cancelled"
)

// AppointmentEvent is the payload posted for every appointment
// lifecycle change. The endpoint turns these into customer emails.
type AppointmentEvent struct {
	Type               string  `json:"type"`
	AppointmentID      int64   `json:"appointmentId"`
	Reference          string  `json:"reference"`
	ServiceName        string  `json:"serviceName"`
	Date               string  `json:"date"`      // "2025-10-15"
	StartTime          string  `json:"startTime"` // "10:00"
	EndTime            string  `json:"endTime"`
	CustomerID         *int64  `json:"customerId,omitempty"`
	StaffID            *int64  `json:"staffId,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}
