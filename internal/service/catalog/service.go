// Package catalog exposes the read-only directory of services and
// their assigned staff.
package catalog

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	"github.com/bookcore/appointment-service/internal/service/catalog/models"
)

// Service reads the bookable catalog.
type Service struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService creates the catalog service.
func NewService(serviceRepo ServiceRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// ListServices returns the active services.
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching active services")

	services, err := s.serviceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: %d active services", len(services))
	return models.FromDomainServices(services), nil
}

// ListStaffForService returns the active staff assigned to a service.
func (s *Service) ListStaffForService(ctx context.Context, serviceID int64) (*models.StaffListResponse, error) {
	s.logger.Info("ListStaffForService: service=%d", serviceID)

	if _, err := s.serviceRepo.GetRules(ctx, serviceID); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("ListStaffForService: service id=%d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("ListStaffForService: failed to get service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStaffForService - repository error: %v", ErrInternal, err)
	}

	staff, err := s.staffRepo.ListByService(ctx, serviceID)
	if err != nil {
		s.logger.Error("ListStaffForService: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: ListStaffForService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStaffForService: service=%d, %d staff members", serviceID, len(staff))
	return models.FromDomainStaff(serviceID, staff), nil
}
