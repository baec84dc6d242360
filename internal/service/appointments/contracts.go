package appointments

import (
	"context"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/internal/integrations/notifier"
)

// AppointmentRepository is the persistence interface used by the service.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error)
}

// AvailabilityCache invalidates cached availability when a
// cancellation frees a slot. A nil cache disables invalidation.
type AvailabilityCache interface {
	Invalidate(ctx context.Context, serviceID int64) error
}

// Notifier delivers appointment lifecycle events to the notification
// endpoint. A nil notifier disables delivery.
type Notifier interface {
	Notify(ctx context.Context, event *notifier.AppointmentEvent) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
