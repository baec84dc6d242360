package scheduling

import (
	"sort"
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/types"
)

// GenerateSlots produces the ordered bookable windows for one date.
//
// The caller is responsible for rejecting day-offs first (see Calendar);
// this function only looks at the weekly schedule. For each configured
// hour range a cursor walks from the range start in steps of
// duration+preBuffer+postBuffer; each step emits the window
// [cursor+preBuffer, cursor+preBuffer+duration] unless it would spill
// past the range end; partial slots are never emitted.
//
// Ranges are processed independently and not deduplicated: overlapping
// configuration yields overlapping slots. The concatenated result is
// sorted by start time so callers get a deterministic order even when
// the configuration is unordered.
//
// When the effective schedule has the weekday enabled but carries no
// hour ranges, the business default ranges for that weekday are used.
func GenerateSlots(
	date time.Time,
	schedule domain.WeeklySchedule,
	business domain.WeeklySchedule,
	durationMinutes, preBufferMinutes, postBufferMinutes int,
) []domain.Slot {
	day := date.Weekday()
	if !schedule.IsEnabled(day) {
		return nil
	}

	span := durationMinutes + preBufferMinutes + postBufferMinutes
	if span < 1 {
		// Degenerate configuration: zero or negative slot span.
		return nil
	}

	ranges := schedule.RangesFor(day)
	if len(ranges) == 0 {
		ranges = business.RangesFor(day)
	}

	var slots []domain.Slot

	for _, hr := range ranges {
		rangeStart, err := hr.Start.Minutes()
		if err != nil {
			continue
		}
		rangeEnd, err := hr.End.Minutes()
		if err != nil {
			continue
		}

		for cursor := rangeStart; cursor < rangeEnd; cursor += span {
			slotStart := cursor + preBufferMinutes
			slotEnd := slotStart + durationMinutes
			if slotEnd > rangeEnd {
				continue
			}

			start, err := types.FromMinutes(slotStart)
			if err != nil {
				continue
			}
			end, err := types.FromMinutes(slotEnd)
			if err != nil {
				continue
			}
			slots = append(slots, domain.Slot{Start: start, End: end})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.IsBefore(slots[j].Start)
	})

	return slots
}

// ContainsSlot reports whether the requested window exactly matches one
// of the generated slots. Booking requires an exact boundary match.
func ContainsSlot(slots []domain.Slot, candidate domain.Slot) bool {
	for _, s := range slots {
		if s.Equal(candidate) {
			return true
		}
	}
	return false
}
