package scheduling

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
)

// Calendar answers day-off questions from a business holiday list and
// an optional staff-specific override.
type Calendar struct {
	// Enabled is the external feature gate. When off, nothing is ever
	// a day off.
	Enabled bool

	BusinessHolidays []domain.HolidaySpec

	// StaffDaysOff fully replaces BusinessHolidays when non-empty.
	// The lists are never merged.
	StaffDaysOff []domain.HolidaySpec
}

// NewCalendar builds a calendar; staffDaysOff may be nil.
func NewCalendar(enabled bool, businessHolidays, staffDaysOff []domain.HolidaySpec) Calendar {
	return Calendar{
		Enabled:          enabled,
		BusinessHolidays: businessHolidays,
		StaffDaysOff:     staffDaysOff,
	}
}

// IsDayOff reports whether date is excluded from booking.
// Comparison is at day granularity; time-of-day never matters.
func (c Calendar) IsDayOff(date time.Time) bool {
	if !c.Enabled {
		return false
	}

	effective := c.BusinessHolidays
	if len(c.StaffDaysOff) > 0 {
		effective = c.StaffDaysOff
	}

	for _, spec := range effective {
		if spec.Contains(date) {
			return true
		}
	}
	return false
}
