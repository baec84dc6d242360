package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookcore/appointment-service/internal/domain"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	staffRepo "github.com/bookcore/appointment-service/internal/infra/storage/staff"
	"github.com/bookcore/appointment-service/internal/scheduling"
)

// UseCase lists every slot of one date for a service, each annotated
// with whether it can still be booked and why not.
type UseCase struct {
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute computes the annotated slot list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, staff=%v, customer=%v",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StaffID, req.CustomerID)

	// 1. Validate input.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Load the service rules.
	service, err := uc.serviceRepo.GetRules(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Load the staff rules when a staff member is requested.
	staff, err := uc.loadStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Load the business schedule and holiday calendar.
	businessHours, err := uc.scheduleRepo.GetBusinessHours(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	calendar, err := uc.loadCalendar(ctx, staff)
	if err != nil {
		return nil, err
	}

	// 5. A day off yields an empty list, not an error.
	if calendar.IsDayOff(req.Date) {
		uc.logger.Info("GetAvailableSlots: %s is a day off", req.Date.Format(domain.DateFormat))
		return uc.respond(req, nil), nil
	}

	// 6. Generate the date's slots from the effective schedule.
	resolved := scheduling.ResolveWorkingHours(service, staff, businessHours)
	slots := scheduling.GenerateSlots(req.Date, resolved, businessHours,
		service.DurationMinutes, service.PreBufferMinutes(), service.PostBufferMinutes())
	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots on %s", req.Date.Format(domain.DateFormat))
		return uc.respond(req, nil), nil
	}

	// 7. Annotate against the day's appointments.
	appointments, err := uc.appointmentRepo.ListOnDate(ctx, domain.DayFilter{
		Date:       req.Date,
		StaffID:    req.StaffID,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	annotated := scheduling.Annotate(slots, appointments, req.StaffID, req.CustomerID)

	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, %d slots",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(annotated))

	return uc.respond(req, annotated), nil
}

func (uc *UseCase) loadStaff(ctx context.Context, req *Request) (*domain.StaffRules, error) {
	if req.StaffID == nil {
		return nil, nil
	}

	staff, err := uc.staffRepo.GetRules(ctx, *req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("GetAvailableSlots: staff id=%d is inactive", *req.StaffID)
		return nil, ErrStaffNotFound
	}

	assigned, err := uc.serviceRepo.IsStaffAssigned(ctx, *req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check staff assignment: %v", ErrInternal, err)
	}
	if !assigned {
		uc.logger.Warn("GetAvailableSlots: staff id=%d is not assigned to service id=%d",
			*req.StaffID, req.ServiceID)
		return nil, ErrStaffNotAssigned
	}

	return staff, nil
}

func (uc *UseCase) loadCalendar(ctx context.Context, staff *domain.StaffRules) (scheduling.Calendar, error) {
	holidaysEnabled, err := uc.scheduleRepo.HolidaysEnabled(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read holidays gate: %v", err)
		return scheduling.Calendar{}, fmt.Errorf("%w: failed to read holidays setting: %v", ErrInternal, err)
	}

	var holidays []domain.HolidaySpec
	if holidaysEnabled {
		if holidays, err = uc.scheduleRepo.GetBusinessHolidays(ctx); err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get holidays: %v", err)
			return scheduling.Calendar{}, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
	}

	var staffDaysOff []domain.HolidaySpec
	if staff != nil {
		staffDaysOff = staff.DaysOff
	}

	return scheduling.NewCalendar(holidaysEnabled, holidays, staffDaysOff), nil
}

func (uc *UseCase) respond(req *Request, annotated []domain.AnnotatedSlot) *Response {
	slots := make([]Slot, 0, len(annotated))
	for _, s := range annotated {
		slots = append(slots, Slot{
			StartTime: s.Start,
			EndTime:   s.End,
			Available: s.Available,
			Reason:    s.Reason,
		})
	}

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StaffID:   req.StaffID,
		Slots:     slots,
	}
}
