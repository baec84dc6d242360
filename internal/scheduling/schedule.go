// Package scheduling is the pure availability engine: it turns working
// hours, holiday calendars, durations and buffers into bookable slots
// and conflict verdicts. Everything here is side-effect free and safe
// for concurrent use; data access lives with the callers.
package scheduling

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
)

// ResolveWorkingHours computes the effective weekly schedule for a
// (service, optional staff) pair.
//
// The base is the service's own hours when configured, else the
// business default. A staff member with custom working hours gates
// which weekdays survive: a weekday stays in the result only when both
// sides have it (key intersection, not an hour-range merge). The hour
// ranges themselves always come from the service/business side.
func ResolveWorkingHours(service *domain.ServiceRules, staff *domain.StaffRules, business domain.WeeklySchedule) domain.WeeklySchedule {
	base := business
	if service.Hours != nil {
		base = service.Hours
	}

	effective := base.Clone()

	if staff != nil && staff.WorkingHours != nil {
		for day := range effective {
			if _, ok := staff.WorkingHours[day]; !ok {
				delete(effective, day)
			}
		}
	}

	return effective
}

// IsActiveOn reports whether date's weekday is bookable in schedule.
func IsActiveOn(schedule domain.WeeklySchedule, date time.Time) bool {
	return schedule.IsEnabled(date.Weekday())
}
