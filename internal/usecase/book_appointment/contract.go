package book_appointment

import (
	"context"
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/internal/integrations/notifier"
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

// AppointmentRepository persists appointments. ListOnDate locks the
// returned rows when called inside the booking transaction.
type AppointmentRepository interface {
	ListOnDate(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error)
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager runs the conflict check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityCache invalidates cached availability after a booking.
// A nil cache disables invalidation.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, serviceID int64) error
}

// Notifier delivers appointment lifecycle events to the notification
// endpoint. A nil notifier disables delivery.
type Notifier interface {
	Notify(ctx context.Context, event *notifier.AppointmentEvent) error
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
