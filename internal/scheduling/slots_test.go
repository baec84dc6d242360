package scheduling

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/types"
)

// monday is 2024-06-03, a Monday.
var monday = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func weeklyMonday(ranges ...domain.HourRange) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		time.Monday: {Enabled: true, Ranges: ranges},
	}
}

func hr(start, end types.TimeString) domain.HourRange {
	return domain.HourRange{Start: start, End: end}
}

func TestGenerateSlotsNoBuffers(t *testing.T) {
	// 09:00-17:00, 30 minute duration, no buffers: 16 back-to-back slots.
	schedule := weeklyMonday(hr("09:00", "17:00"))

	slots := GenerateSlots(monday, schedule, nil, 30, 0, 0)

	require.Len(t, slots, 16)
	assert.Equal(t, domain.Slot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, domain.Slot{Start: "09:30", End: "10:00"}, slots[1])
	assert.Equal(t, domain.Slot{Start: "16:30", End: "17:00"}, slots[15])
}

func TestGenerateSlotsWithBuffers(t *testing.T) {
	// duration=30, pre=10, post=5 gives a 45 minute span. First window
	// starts at 09:10; the 11th cursor (16:45) would end at 17:05 and
	// is discarded by the non-spill rule, leaving 10 slots.
	schedule := weeklyMonday(hr("09:00", "17:00"))

	slots := GenerateSlots(monday, schedule, nil, 30, 10, 5)

	require.Len(t, slots, 10)
	assert.Equal(t, domain.Slot{Start: "09:10", End: "09:40"}, slots[0])
	assert.Equal(t, domain.Slot{Start: "09:55", End: "10:25"}, slots[1])
	assert.Equal(t, domain.Slot{Start: "16:10", End: "16:40"}, slots[9])
}

func TestGenerateSlotsInvariants(t *testing.T) {
	schedule := weeklyMonday(hr("09:00", "12:30"), hr("14:00", "17:45"))

	const duration, pre, post = 25, 5, 10
	slots := GenerateSlots(monday, schedule, nil, duration, pre, post)
	require.NotEmpty(t, slots)

	rangeEnds := map[string]int{}
	for _, r := range schedule[time.Monday].Ranges {
		end, err := r.End.Minutes()
		require.NoError(t, err)
		start, _ := r.Start.Minutes()
		rangeEnds[fmt.Sprintf("%d-%d", start, end)] = end
	}

	for i, slot := range slots {
		start, err := slot.Start.Minutes()
		require.NoError(t, err)
		end, err := slot.End.Minutes()
		require.NoError(t, err)

		// Exact duration invariant.
		assert.Equal(t, duration, end-start, "slot %d", i)

		// Non-spill invariant: the slot fits some configured range.
		fits := false
		for _, r := range schedule[time.Monday].Ranges {
			rs, _ := r.Start.Minutes()
			re, _ := r.End.Minutes()
			if start >= rs && end <= re {
				fits = true
			}
		}
		assert.True(t, fits, "slot %d spills past its range", i)

		// Output sorted by start.
		if i > 0 {
			prev, _ := slots[i-1].Start.Minutes()
			assert.LessOrEqual(t, prev, start)
		}
	}
}

func TestGenerateSlotsDeterminism(t *testing.T) {
	schedule := weeklyMonday(hr("14:00", "17:00"), hr("09:00", "12:00"))

	first := GenerateSlots(monday, schedule, nil, 20, 5, 5)
	second := GenerateSlots(monday, schedule, nil, 20, 5, 5)

	assert.Equal(t, first, second)
	// Unordered configuration still yields start-sorted output.
	require.NotEmpty(t, first)
	assert.Equal(t, types.TimeString("09:05"), first[0].Start)
}

func TestGenerateSlotsDisabledWeekday(t *testing.T) {
	schedule := domain.WeeklySchedule{
		time.Monday: {Enabled: false, Ranges: []domain.HourRange{hr("09:00", "17:00")}},
	}
	assert.Empty(t, GenerateSlots(monday, schedule, nil, 30, 0, 0))

	// A weekday absent from the schedule is just as unbookable.
	assert.Empty(t, GenerateSlots(monday, domain.WeeklySchedule{}, nil, 30, 0, 0))
}

func TestGenerateSlotsDegenerateSpan(t *testing.T) {
	schedule := weeklyMonday(hr("09:00", "17:00"))
	assert.Empty(t, GenerateSlots(monday, schedule, nil, 0, 0, 0))
	assert.Empty(t, GenerateSlots(monday, schedule, nil, -30, 10, 5))
}

func TestGenerateSlotsBusinessFallback(t *testing.T) {
	// Weekday enabled but with no ranges of its own: the business-wide
	// default ranges for that weekday apply.
	serviceSchedule := weeklyMonday()
	business := weeklyMonday(hr("10:00", "12:00"))

	slots := GenerateSlots(monday, serviceSchedule, business, 60, 0, 0)

	require.Len(t, slots, 2)
	assert.Equal(t, domain.Slot{Start: "10:00", End: "11:00"}, slots[0])
	assert.Equal(t, domain.Slot{Start: "11:00", End: "12:00"}, slots[1])
}

func TestGenerateSlotsOverlappingRangesNotMerged(t *testing.T) {
	// Overlapping configured ranges each emit independently; duplicates
	// are the configuration's problem, not the generator's.
	schedule := weeklyMonday(hr("09:00", "10:00"), hr("09:00", "10:00"))

	slots := GenerateSlots(monday, schedule, nil, 30, 0, 0)

	require.Len(t, slots, 4)
	assert.Equal(t, slots[0], slots[1])
}

func TestGenerateSlotsShortRange(t *testing.T) {
	// A range shorter than the slot span yields nothing.
	schedule := weeklyMonday(hr("09:00", "09:20"))
	assert.Empty(t, GenerateSlots(monday, schedule, nil, 30, 0, 0))
}

func TestContainsSlot(t *testing.T) {
	schedule := weeklyMonday(hr("09:00", "17:00"))
	slots := GenerateSlots(monday, schedule, nil, 30, 0, 0)

	assert.True(t, ContainsSlot(slots, domain.Slot{Start: "10:00", End: "10:30"}))

	// 10:05 lies inside working hours but matches no generated slot;
	// exact boundary match is required.
	assert.False(t, ContainsSlot(slots, domain.Slot{Start: "10:05", End: "10:35"}))
	assert.False(t, ContainsSlot(slots, domain.Slot{Start: "10:00", End: "10:45"}))
}
