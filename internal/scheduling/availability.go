package scheduling

import (
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/types"
)

// Reason strings surfaced to end users on unavailable slots.
const (
	ReasonStaffUnavailable = "staff unavailable"
	ReasonCustomerBusy     = "you already have an appointment at this time"
	ReasonSlotUnavailable  = "slot unavailable"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant: aStart < bEnd && bStart < aEnd.
// Touching intervals (one ends exactly where the other starts) do not
// overlap. This single predicate subsumes the containment and
// edge-overlap cases checked separately in older implementations.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// Conflict describes why a slot is unavailable.
type Conflict struct {
	Appointment *domain.Appointment
	Reason      string
}

// FindConflict scans the day's appointments for one overlapping the
// candidate slot. Inactive appointments (cancelled, no-show) never
// conflict. When several appointments overlap, the staff-match reason
// wins over the customer-match reason, mirroring the check order of the
// booking flow.
func FindConflict(slot domain.Slot, appointments []*domain.Appointment, staffID, customerID *int64) *Conflict {
	var found *Conflict

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if !Overlaps(appt.StartTime, appt.EndTime, slot.Start, slot.End) {
			continue
		}

		switch {
		case staffID != nil && appt.StaffID != nil && *appt.StaffID == *staffID:
			// Highest precedence; no later appointment can change it.
			return &Conflict{Appointment: appt, Reason: ReasonStaffUnavailable}
		case customerID != nil && appt.CustomerID != nil && *appt.CustomerID == *customerID:
			found = &Conflict{Appointment: appt, Reason: ReasonCustomerBusy}
		default:
			if found == nil {
				found = &Conflict{Appointment: appt, Reason: ReasonSlotUnavailable}
			}
		}
	}

	return found
}

// Annotate marks every generated slot with its availability verdict
// against the day's appointments.
func Annotate(slots []domain.Slot, appointments []*domain.Appointment, staffID, customerID *int64) []domain.AnnotatedSlot {
	result := make([]domain.AnnotatedSlot, len(slots))

	for i, slot := range slots {
		annotated := domain.AnnotatedSlot{Slot: slot, Available: true}
		if conflict := FindConflict(slot, appointments, staffID, customerID); conflict != nil {
			annotated.Available = false
			annotated.Reason = conflict.Reason
		}
		result[i] = annotated
	}

	return result
}

// CountForDate builds the per-date aggregate. The booked count comes
// pre-aggregated from the appointment store; available is total-booked
// and goes negative when a date was manually over-booked.
func CountForDate(date time.Time, slots []domain.Slot, booked int) domain.DateAvailability {
	total := len(slots)
	return domain.DateAvailability{
		Date:      date,
		Total:     total,
		Booked:    booked,
		Available: total - booked,
	}
}
