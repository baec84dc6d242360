package domain

import (
	"sort"
	"time"

	"github.com/bookcore/appointment-service/pkg/types"
)

// HourRange is a half-open [Start, End) working interval within a day.
// Invariant: Start < End.
type HourRange struct {
	Start types.TimeString
	End   types.TimeString
}

// Valid reports whether the range satisfies the Start < End invariant.
func (r HourRange) Valid() bool {
	return r.Start.IsBefore(r.End)
}

// DayHours is the working-hours configuration for one weekday.
// Ranges are not assumed sorted or merged.
type DayHours struct {
	Enabled bool
	Ranges  []HourRange
}

// WeeklySchedule maps weekdays to their working hours. A weekday absent
// from the map is treated as not bookable; this presence semantics is
// what the staff/service schedule intersection relies on.
type WeeklySchedule map[time.Weekday]DayHours

// IsEnabled reports whether the weekday is present and enabled.
func (s WeeklySchedule) IsEnabled(day time.Weekday) bool {
	d, ok := s[day]
	return ok && d.Enabled
}

// RangesFor returns the configured hour ranges for a weekday.
// Returns nil when the weekday is absent or disabled.
func (s WeeklySchedule) RangesFor(day time.Weekday) []HourRange {
	d, ok := s[day]
	if !ok || !d.Enabled {
		return nil
	}
	return d.Ranges
}

// EnabledDays returns the enabled weekdays in Sunday-first order.
func (s WeeklySchedule) EnabledDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(s))
	for day, hours := range s {
		if hours.Enabled {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Clone returns a deep copy. Resolvers never mutate their inputs.
func (s WeeklySchedule) Clone() WeeklySchedule {
	out := make(WeeklySchedule, len(s))
	for day, hours := range s {
		ranges := make([]HourRange, len(hours.Ranges))
		copy(ranges, hours.Ranges)
		out[day] = DayHours{Enabled: hours.Enabled, Ranges: ranges}
	}
	return out
}
