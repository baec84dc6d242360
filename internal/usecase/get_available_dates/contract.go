package get_available_dates

import (
	"context"
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
)

// ServiceRepository loads service booking rules.
type ServiceRepository interface {
	GetRules(ctx context.Context, serviceID int64) (*domain.ServiceRules, error)
	IsStaffAssigned(ctx context.Context, staffID, serviceID int64) (bool, error)
}

// StaffRepository loads staff scheduling rules.
type StaffRepository interface {
	GetRules(ctx context.Context, staffID int64) (*domain.StaffRules, error)
}

// ScheduleRepository loads business-wide scheduling configuration.
type ScheduleRepository interface {
	GetBusinessHours(ctx context.Context) (domain.WeeklySchedule, error)
	GetBusinessHolidays(ctx context.Context) ([]domain.HolidaySpec, error)
	HolidaysEnabled(ctx context.Context) (bool, error)
}

// AppointmentRepository answers day-level booking counts.
type AppointmentRepository interface {
	CountActivePerDate(ctx context.Context, serviceID int64, staffID *int64, from, to time.Time) (map[string]int, error)
}

// AvailabilityCache caches computed availability lists. A nil cache
// disables caching.
type AvailabilityCache interface {
	GetDates(ctx context.Context, serviceID int64, staffID *int64, from time.Time, horizonDays int) ([]domain.DateAvailability, error)
	SetDates(ctx context.Context, serviceID int64, staffID *int64, from time.Time, horizonDays int, dates []domain.DateAvailability) error
}

// TimeProvider supplies the current time, swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
