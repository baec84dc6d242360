package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/ptr"
	"github.com/bookcore/appointment-service/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     types.TimeString
		want                           bool
	}{
		{name: "disjoint", aStart: "09:00", aEnd: "10:00", bStart: "11:00", bEnd: "12:00", want: false},
		{name: "touching a before b", aStart: "09:00", aEnd: "10:00", bStart: "10:00", bEnd: "11:00", want: false},
		{name: "touching b before a", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "10:00", want: false},
		{name: "partial overlap left edge", aStart: "09:30", aEnd: "10:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "partial overlap right edge", aStart: "10:30", aEnd: "11:30", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "a nested in b", aStart: "10:15", aEnd: "10:45", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "b nested in a", aStart: "10:00", aEnd: "11:00", bStart: "10:15", bEnd: "10:45", want: true},
		{name: "identical", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
		{name: "one minute shared", aStart: "09:00", aEnd: "10:01", bStart: "10:00", bEnd: "11:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func appt(id int64, staffID, customerID *int64, start, end types.TimeString) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		ServiceID:  1,
		StaffID:    staffID,
		CustomerID: customerID,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusConfirmed,
	}
}

func TestFindConflictStaffMatch(t *testing.T) {
	// Existing appointment staff=1 10:00-10:30 against candidate
	// 10:15-10:45 for the same staff member.
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(1)), ptr.Ptr(int64(7)), "10:00", "10:30"),
	}
	slot := domain.Slot{Start: "10:15", End: "10:45"}

	conflict := FindConflict(slot, existing, ptr.Ptr(int64(1)), nil)
	require.NotNil(t, conflict)
	assert.Equal(t, ReasonStaffUnavailable, conflict.Reason)
}

func TestFindConflictDifferentStaff(t *testing.T) {
	// Same appointment, but the query asks about staff 2: no staff or
	// customer match, so the slot is generically blocked at most. Here
	// the appointment belongs to staff 1 and customer 7, and the query
	// carries neither, so the overlap still exists but the reason is
	// the generic one; the caller filtering by party upstream would not
	// even have fetched it. The documented behaviour for the annotate
	// surface is available=true only when nothing fetched overlaps.
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(1)), ptr.Ptr(int64(7)), "10:00", "10:30"),
	}
	slot := domain.Slot{Start: "10:15", End: "10:45"}

	conflict := FindConflict(slot, existing, ptr.Ptr(int64(2)), nil)
	require.NotNil(t, conflict)
	assert.Equal(t, ReasonSlotUnavailable, conflict.Reason)
}

func TestFindConflictCustomerMatch(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(3)), ptr.Ptr(int64(7)), "10:00", "10:30"),
	}
	slot := domain.Slot{Start: "10:00", End: "10:30"}

	conflict := FindConflict(slot, existing, nil, ptr.Ptr(int64(7)))
	require.NotNil(t, conflict)
	assert.Equal(t, ReasonCustomerBusy, conflict.Reason)
}

func TestFindConflictStaffReasonWinsOverCustomer(t *testing.T) {
	// Two overlapping appointments, one matching the customer and a
	// later one matching the staff member: staff precedence holds
	// regardless of scan order.
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(9)), ptr.Ptr(int64(7)), "10:00", "10:30"),
		appt(2, ptr.Ptr(int64(1)), ptr.Ptr(int64(8)), "10:00", "10:30"),
	}
	slot := domain.Slot{Start: "10:00", End: "10:30"}

	conflict := FindConflict(slot, existing, ptr.Ptr(int64(1)), ptr.Ptr(int64(7)))
	require.NotNil(t, conflict)
	assert.Equal(t, ReasonStaffUnavailable, conflict.Reason)
}

func TestFindConflictIgnoresInactive(t *testing.T) {
	cancelled := appt(1, ptr.Ptr(int64(1)), nil, "10:00", "10:30")
	cancelled.Status = domain.StatusCancelledByCustomer

	slot := domain.Slot{Start: "10:00", End: "10:30"}
	assert.Nil(t, FindConflict(slot, []*domain.Appointment{cancelled}, ptr.Ptr(int64(1)), nil))
}

func TestFindConflictTouchingIntervals(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(1)), nil, "09:00", "10:00"),
		appt(2, ptr.Ptr(int64(1)), nil, "10:30", "11:00"),
	}
	// Candidate exactly between the two: boundaries touch, no overlap.
	slot := domain.Slot{Start: "10:00", End: "10:30"}
	assert.Nil(t, FindConflict(slot, existing, ptr.Ptr(int64(1)), nil))
}

func TestAnnotate(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, ptr.Ptr(int64(1)), nil, "10:00", "10:30"),
	}
	slots := []domain.Slot{
		{Start: "09:30", End: "10:00"},
		{Start: "10:00", End: "10:30"},
		{Start: "10:30", End: "11:00"},
	}

	annotated := Annotate(slots, existing, ptr.Ptr(int64(1)), nil)
	require.Len(t, annotated, 3)

	assert.True(t, annotated[0].Available)
	assert.Empty(t, annotated[0].Reason)

	assert.False(t, annotated[1].Available)
	assert.Equal(t, ReasonStaffUnavailable, annotated[1].Reason)

	assert.True(t, annotated[2].Available)
}

func TestCountForDate(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	slots := []domain.Slot{{Start: "09:00", End: "09:30"}, {Start: "09:30", End: "10:00"}}

	agg := CountForDate(date, slots, 1)
	assert.Equal(t, 2, agg.Total)
	assert.Equal(t, 1, agg.Booked)
	assert.Equal(t, 1, agg.Available)

	// Over-booked dates go negative; the count is deliberately unclamped.
	over := CountForDate(date, slots, 5)
	assert.Equal(t, -3, over.Available)
}
