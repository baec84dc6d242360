package get_available_slots

import (
	"time"

	"github.com/bookcore/appointment-service/pkg/types"
)

// Request carries the slot listing parameters. StaffID and CustomerID
// sharpen the conflict annotation; both are optional.
type Request struct {
	ServiceID  int64
	Date       time.Time
	StaffID    *int64
	CustomerID *int64
}

// Response lists every generated slot for the date with its verdict.
// A closed or holiday date yields an empty list, not an error.
type Response struct {
	ServiceID int64
	Date      time.Time
	StaffID   *int64
	Slots     []Slot
}

// Slot is one bookable window with its availability verdict.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Reason    string // empty when available
}
