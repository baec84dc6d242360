package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bookcore/appointment-service/internal/domain"
	appointmentRepo "github.com/bookcore/appointment-service/internal/infra/storage/appointment"
	"github.com/bookcore/appointment-service/internal/integrations/notifier"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	staffRepo "github.com/bookcore/appointment-service/internal/infra/storage/staff"
	"github.com/bookcore/appointment-service/internal/scheduling"
)

// UseCase books one slot. The conflict check and the insert run in a
// serializable transaction with the day's relevant rows locked, and a
// partial unique index backs them up at the database level.
type UseCase struct {
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	cache           AvailabilityCache
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case. cache and notifier may be nil.
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	cache AvailabilityCache,
	notif Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		cache:           cache,
		notifier:        notif,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute books the requested slot.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: service=%d, staff=%v, customer=%v, date=%s, time=%s",
		req.ServiceID, req.StaffID, req.CustomerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. The booking date must not lie in the past.
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("BookAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Load the service rules.
	service, err := uc.serviceRepo.GetRules(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("BookAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Load the staff rules when a staff member is requested.
	staff, err := uc.loadStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Load the schedule configuration and holiday calendar.
	businessHours, calendar, err := uc.loadScheduleConfig(ctx, staff)
	if err != nil {
		return nil, err
	}

	// 6. Holidays and days off reject the whole date.
	if calendar.IsDayOff(req.Date) {
		uc.logger.Warn("BookAppointment: %s is a day off", req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 7. The requested window must match a generated slot exactly.
	resolved := scheduling.ResolveWorkingHours(service, staff, businessHours)
	slots := scheduling.GenerateSlots(req.Date, resolved, businessHours,
		service.DurationMinutes, service.PreBufferMinutes(), service.PostBufferMinutes())

	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("BookAppointment: slot end overflows the day: %v", err)
		return nil, ErrSlotNotAvailable
	}
	candidate := domain.Slot{Start: req.StartTime, End: endTime}

	if !scheduling.ContainsSlot(slots, candidate) {
		uc.logger.Warn("BookAppointment: %s-%s is not a valid slot on %s",
			candidate.Start, candidate.End, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotNotAvailable
	}

	// 8. Conflict check and insert inside a serializable transaction.
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Lock the day's appointments for this staff/customer pair.
		appointments, err := uc.appointmentRepo.ListOnDate(txCtx, domain.DayFilter{
			Date:       req.Date,
			StaffID:    req.StaffID,
			CustomerID: req.CustomerID,
		})
		if err != nil {
			uc.logger.Error("BookAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 8.2. Reject on overlap. Staff conflicts outrank customer
		// conflicts, which outrank the generic verdict.
		if conflict := scheduling.FindConflict(candidate, appointments, req.StaffID, req.CustomerID); conflict != nil {
			uc.logger.Warn("BookAppointment: conflict with appointment id=%d: %s",
				conflict.Appointment.ID, conflict.Reason)
			return conflictError(conflict.Reason)
		}

		// 8.3. Insert with denormalized service data.
		appt := &domain.Appointment{
			Reference:              uuid.New().String(),
			ServiceID:              req.ServiceID,
			StaffID:                req.StaffID,
			CustomerID:             req.CustomerID,
			Date:                   req.Date,
			StartTime:              candidate.Start,
			EndTime:                candidate.End,
			Status:                 domain.StatusConfirmed,
			ServiceName:            service.Name,
			ServiceDurationMinutes: service.DurationMinutes,
			Notes:                  req.Notes,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
				uc.logger.Warn("BookAppointment: slot taken by a concurrent booking")
				return ErrSlotConflict
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 9. Drop stale availability. A cache failure is not a booking
	// failure.
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, req.ServiceID); err != nil {
			uc.logger.Warn("BookAppointment: failed to invalidate cache: %v", err)
		}
	}

	// 10. Announce the booking. Notification loss is already logged by
	// the client and never fails the booking.
	if uc.notifier != nil {
		_ = uc.notifier.Notify(ctx, &notifier.AppointmentEvent{
			Type:          notifier.EventAppointmentBooked,
			AppointmentID: created.ID,
			Reference:     created.Reference,
			ServiceName:   created.ServiceName,
			Date:          created.Date.Format(domain.DateFormat),
			StartTime:     created.StartTime.String(),
			EndTime:       created.EndTime.String(),
			CustomerID:    created.CustomerID,
			StaffID:       created.StaffID,
		})
	}

	uc.logger.Info("BookAppointment: created appointment id=%d ref=%s", created.ID, created.Reference)

	return &Response{
		ID:              created.ID,
		Reference:       created.Reference,
		ServiceID:       created.ServiceID,
		StaffID:         created.StaffID,
		CustomerID:      created.CustomerID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		Status:          created.Status,
		ServiceName:     created.ServiceName,
		DurationMinutes: created.ServiceDurationMinutes,
		Notes:           created.Notes,
		CreatedAt:       created.CreatedAt,
	}, nil
}

func (uc *UseCase) loadStaff(ctx context.Context, req *Request) (*domain.StaffRules, error) {
	if req.StaffID == nil {
		return nil, nil
	}

	staff, err := uc.staffRepo.GetRules(ctx, *req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("BookAppointment: staff id=%d not found", *req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("BookAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("BookAppointment: staff id=%d is inactive", *req.StaffID)
		return nil, ErrStaffNotFound
	}

	assigned, err := uc.serviceRepo.IsStaffAssigned(ctx, *req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to check assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check staff assignment: %v", ErrInternal, err)
	}
	if !assigned {
		uc.logger.Warn("BookAppointment: staff id=%d is not assigned to service id=%d",
			*req.StaffID, req.ServiceID)
		return nil, ErrStaffNotAssigned
	}

	return staff, nil
}

func (uc *UseCase) loadScheduleConfig(
	ctx context.Context,
	staff *domain.StaffRules,
) (domain.WeeklySchedule, scheduling.Calendar, error) {
	businessHours, err := uc.scheduleRepo.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get business hours: %v", err)
		return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	holidaysEnabled, err := uc.scheduleRepo.HolidaysEnabled(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to read holidays gate: %v", err)
		return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to read holidays setting: %v", ErrInternal, err)
	}

	var holidays []domain.HolidaySpec
	if holidaysEnabled {
		if holidays, err = uc.scheduleRepo.GetBusinessHolidays(ctx); err != nil {
			uc.logger.Error("BookAppointment: failed to get holidays: %v", err)
			return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
	}

	var staffDaysOff []domain.HolidaySpec
	if staff != nil {
		staffDaysOff = staff.DaysOff
	}

	return businessHours, scheduling.NewCalendar(holidaysEnabled, holidays, staffDaysOff), nil
}

func conflictError(reason string) error {
	switch reason {
	case scheduling.ReasonStaffUnavailable:
		return ErrStaffConflict
	case scheduling.ReasonCustomerBusy:
		return ErrCustomerConflict
	default:
		return ErrSlotConflict
	}
}
