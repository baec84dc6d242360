package get_available_slots

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

// AppointmentRepository lists the appointments relevant to conflict
// annotation on one date.
type AppointmentRepository interface {
	ListOnDate(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error)
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider supplies the current time, swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
