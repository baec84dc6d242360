package domain

import "time"

// StaffRules is the scheduling-relevant view of a staff member.
type StaffRules struct {
	ID     int64
	Name   string
	Active bool

	// WorkingHours gates which weekdays of the service schedule remain
	// bookable (key intersection). Nil means no gating. The hour ranges
	// of the service side always win; only weekday presence matters here.
	WorkingHours WeeklySchedule

	// DaysOff fully replaces the business holiday list when non-empty.
	DaysOff []HolidaySpec

	CreatedAt time.Time
	UpdatedAt time.Time
}
