package domain

import "time"

// ServiceRules is the scheduling-relevant view of a service, with all
// durations already normalized to minutes. The storage layer resolves
// units once at load time; nothing downstream sees unit strings.
type ServiceRules struct {
	ID              int64
	Name            string
	Active          bool
	DurationMinutes int
	BufferEnabled   bool
	PreBufferRaw    int // stored value, ignored while BufferEnabled is false
	PostBufferRaw   int
	PriceCents      *int64
	Hours           WeeklySchedule // per-service override; nil means business default

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PreBufferMinutes returns the effective pre buffer.
// Disabled buffers are forced to zero regardless of the stored value.
func (s *ServiceRules) PreBufferMinutes() int {
	if !s.BufferEnabled {
		return 0
	}
	return s.PreBufferRaw
}

// PostBufferMinutes returns the effective post buffer.
func (s *ServiceRules) PostBufferMinutes() int {
	if !s.BufferEnabled {
		return 0
	}
	return s.PostBufferRaw
}

// SlotSpanMinutes is the cursor step when generating slots: the service
// duration plus both effective buffers.
func (s *ServiceRules) SlotSpanMinutes() int {
	return s.DurationMinutes + s.PreBufferMinutes() + s.PostBufferMinutes()
}
