package book_appointment

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	bookAppointment "github.com/bookcore/appointment-service/internal/usecase/book_appointment"
	"github.com/bookcore/appointment-service/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	ServiceID  int64   `json:"serviceId"`
	StaffID    *int64  `json:"staffId,omitempty"`
	CustomerID *int64  `json:"customerId,omitempty"`
	Date       string  `json:"date"`      // "2025-10-15"
	StartTime  string  `json:"startTime"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest parses the date and builds the use case request.
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		ServiceID:  r.ServiceID,
		StaffID:    r.StaffID,
		CustomerID: r.CustomerID,
		Date:       date,
		StartTime:  types.TimeString(r.StartTime),
		Notes:      r.Notes,
	}, nil
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// FromUseCaseResponse converts the use case response to HTTP.
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		CustomerID:      resp.CustomerID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          string(resp.Status),
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
