package service

import (
	"fmt"
	"strings"
)

// normalizeToMinutes converts a stored duration value with its unit
// string into minutes. Units are resolved here, once, at load time;
// everything above the storage layer works in plain minutes.
func normalizeToMinutes(value int, unit string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "minute", "minutes", "min":
		return value, nil
	case "hour", "hours", "hr":
		return value * 60, nil
	default:
		return 0, fmt.Errorf("unknown duration unit %q", unit)
	}
}
