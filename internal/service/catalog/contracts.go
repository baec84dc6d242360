package catalog

import (
	"context"

	"github.com/bookcore/appointment-service/internal/domain"
)

// ServiceRepository reads the bookable services.
type ServiceRepository interface {
	GetRules(ctx context.Context, serviceID int64) (*domain.ServiceRules, error)
	ListActive(ctx context.Context) ([]domain.ServiceRules, error)
}

// StaffRepository reads staff assignments.
type StaffRepository interface {
	ListByService(ctx context.Context, serviceID int64) ([]domain.StaffRules, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
