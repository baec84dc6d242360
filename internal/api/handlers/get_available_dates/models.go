package get_available_dates

import (
	"github.com/bookcore/appointment-service/internal/domain"
	getAvailableDates "github.com/bookcore/appointment-service/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ServiceID int64           `json:"serviceId"`
	StaffID   *int64          `json:"staffId,omitempty"`
	From      string          `json:"from"`
	Days      int             `json:"days"`
	Dates     []AvailableDate `json:"dates"`
}

// AvailableDate is the per-date aggregate.
type AvailableDate struct {
	Date      string `json:"date"`
	Total     int    `json:"totalSlots"`
	Booked    int    `json:"bookedSlots"`
	Available int    `json:"availableSlots"`
}

// FromUseCaseResponse converts the use case response to HTTP.
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]AvailableDate, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = AvailableDate{
			Date:      d.Date.Format(domain.DateFormat),
			Total:     d.Total,
			Booked:    d.Booked,
			Available: d.Available,
		}
	}

	return &AvailableDatesResponse{
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		From:      resp.From.Format(domain.DateFormat),
		Days:      resp.HorizonDays,
		Dates:     dates,
	}
}
