package book_appointment

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/types"
)

// Request carries the booking parameters. StartTime must match a
// generated slot boundary exactly.
type Request struct {
	ServiceID  int64
	StaffID    *int64
	CustomerID *int64
	Date       time.Time
	StartTime  types.TimeString
	Notes      *string
}

// Response is the created appointment.
type Response struct {
	ID              int64
	Reference       string
	ServiceID       int64
	StaffID         *int64
	CustomerID      *int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          domain.AppointmentStatus
	ServiceName     string
	DurationMinutes int
	Notes           *string
	CreatedAt       time.Time
}
