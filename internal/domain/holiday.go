package domain

import "time"

// HolidaySpec marks a single day off or an inclusive [From, To] range.
// A single-day spec has From == To.
type HolidaySpec struct {
	From time.Time
	To   time.Time
}

// SingleHoliday builds a one-day spec.
func SingleHoliday(date time.Time) HolidaySpec {
	day := DateOnly(date)
	return HolidaySpec{From: day, To: day}
}

// HolidayRange builds an inclusive range spec.
func HolidayRange(from, to time.Time) HolidaySpec {
	return HolidaySpec{From: DateOnly(from), To: DateOnly(to)}
}

// Contains reports whether date falls on the holiday, comparing at day
// granularity regardless of the time-of-day either side carries.
func (h HolidaySpec) Contains(date time.Time) bool {
	day := DateOnly(date)
	return !day.Before(DateOnly(h.From)) && !day.After(DateOnly(h.To))
}

// DateOnly truncates a timestamp to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
