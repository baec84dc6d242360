package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is stored as text so it can be scanned from and passed to the
// database directly, and compared without touching time zones.
type TimeString string

// ErrInvalidTimeString is returned when a value is not a valid "HH:MM" time.
var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// ErrTimeOutOfRange is returned when arithmetic leaves the 00:00-24:00 day.
var ErrTimeOutOfRange = errors.New("time is out of the 00:00-24:00 range")

const minutesPerDay = 24 * 60

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates s.
// Accepts "HH:MM" between 00:00 and 24:00 inclusive; "24:00" is allowed
// as an end-of-day boundary value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes converts minutes since midnight into a TimeString.
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String implements fmt.Stringer.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format and range.
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes converts the value to minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	if mins < 0 || mins > 59 || hours < 0 || hours > 24 || (hours == 24 && mins != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hours*60 + mins, nil
}

// AddMinutes returns the value shifted by m minutes.
// Fails if the result leaves the 00:00-24:00 day; slots never wrap midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as not-before, matching the lenient comparison
// semantics the scheduling code relies on.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}
