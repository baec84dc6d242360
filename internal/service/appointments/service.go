// Package appointments exposes read and lifecycle operations on
// existing appointments. Creating appointments is the booking use
// case's job; this service never touches the slot engine.
package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookcore/appointment-service/internal/domain"
	appointmentRepo "github.com/bookcore/appointment-service/internal/infra/storage/appointment"
	"github.com/bookcore/appointment-service/internal/integrations/notifier"
	"github.com/bookcore/appointment-service/internal/service/appointments/models"
)

// Service handles appointment reads and cancellations.
type Service struct {
	appointmentRepo AppointmentRepository
	cache           AvailabilityCache
	notifier        Notifier
	logger          Logger
}

// NewService creates the appointments service. cache and notifier may
// be nil.
func NewService(appointmentRepo AppointmentRepository, cache AvailabilityCache, notif Notifier, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		cache:           cache,
		notifier:        notif,
		logger:          logger,
	}
}

// GetByID fetches one appointment.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments lists a customer's appointments, optionally
// narrowed to one status.
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetCustomerAppointments: customer=%d, status=%v", req.CustomerID, req.Status)

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		parsed, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		status = &parsed
	}

	appts, err := s.appointmentRepo.ListByCustomer(ctx, req.CustomerID, status)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: customer=%d, %d appointments", req.CustomerID, len(appts))
	return models.FromDomainAppointments(appts), nil
}

// Cancel cancels an appointment when its status still allows it, then
// invalidates the service's cached availability since a slot opened up.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: appointment id=%d, by=%s", id, req.CancelledBy)

	status, err := cancelStatus(req.CancelledBy)
	if err != nil {
		s.logger.Warn("Cancel: invalid cancelledBy=%s", req.CancelledBy)
		return nil, err
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d has status %s and cannot be cancelled", id, appt.Status)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.appointmentRepo.Cancel(ctx, id, status, req.Reason)
	if err != nil {
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, cancelled.ServiceID); err != nil {
			s.logger.Warn("Cancel: failed to invalidate cache for service=%d: %v", cancelled.ServiceID, err)
		}
	}

	// Notification loss is already logged by the client and never
	// fails the cancellation.
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, &notifier.AppointmentEvent{
			Type:               notifier.EventAppointmentCancelled,
			AppointmentID:      cancelled.ID,
			Reference:          cancelled.Reference,
			ServiceName:        cancelled.ServiceName,
			Date:               cancelled.Date.Format(domain.DateFormat),
			StartTime:          cancelled.StartTime.String(),
			EndTime:            cancelled.EndTime.String(),
			CustomerID:         cancelled.CustomerID,
			StaffID:            cancelled.StaffID,
			CancelledBy:        &req.CancelledBy,
			CancellationReason: cancelled.CancellationReason,
		})
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(cancelled), nil
}

func cancelStatus(cancelledBy string) (domain.AppointmentStatus, error) {
	switch cancelledBy {
	case models.CancelledByCustomer:
		return domain.StatusCancelledByCustomer, nil
	case models.CancelledByBusiness:
		return domain.StatusCancelledByBusiness, nil
	default:
		return "", fmt.Errorf("%w: cancelledBy must be %q or %q",
			ErrInvalidInput, models.CancelledByCustomer, models.CancelledByBusiness)
	}
}
