package domain

import (
	"time"

	"github.com/bookcore/appointment-service/pkg/types"
)

// Slot is a discrete bookable window. End - Start equals the service
// duration exactly; buffers only affect the spacing between slots.
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// Equal reports exact boundary match. Booking requires it; arbitrary
// sub-windows are never accepted.
func (s Slot) Equal(other Slot) bool {
	return s.Start == other.Start && s.End == other.End
}

// AnnotatedSlot is a slot with its availability verdict for a
// particular staff/customer pair.
type AnnotatedSlot struct {
	Slot
	Available bool
	Reason    string // empty when available
}

// DateAvailability is the per-date aggregate for the dates listing.
// Available is Total - Booked and is deliberately not clamped: manual
// over-booking shows up as a negative number.
type DateAvailability struct {
	Date      time.Time
	Total     int
	Booked    int
	Available int
}
