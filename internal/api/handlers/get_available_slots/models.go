package get_available_slots

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	getAvailableSlots "github.com/bookcore/appointment-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID int64           `json:"serviceId"`
	StaffID   *int64          `json:"staffId,omitempty"`
	Date      string          `json:"date"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot is one slot with its verdict.
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse converts the use case response to HTTP.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
			Reason:    slot.Reason,
		}
	}

	return &AvailableSlotsResponse{
		ServiceID: resp.ServiceID,
		StaffID:   resp.StaffID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}

// ToUseCaseRequest builds the use case request from path and query
// parameters.
func ToUseCaseRequest(serviceID int64, dateStr string, staffID, customerID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID:  serviceID,
		Date:       date,
		StaffID:    staffID,
		CustomerID: customerID,
	}, nil
}
