package get_available_dates

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
)

// Request carries the dates listing parameters.
type Request struct {
	ServiceID   int64
	StaffID     *int64 // nil means any staff
	HorizonDays int    // 0 means the default horizon
}

// Response lists the bookable dates inside the horizon. Dates with no
// generated slots (closed weekdays, holidays) are absent.
type Response struct {
	ServiceID   int64
	StaffID     *int64
	From        time.Time
	HorizonDays int
	Dates       []domain.DateAvailability
}
