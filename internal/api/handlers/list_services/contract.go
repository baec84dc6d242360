package list_services

import (
	"context"

	"github.com/bookcore/appointment-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
