package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookcore/appointment-service/internal/domain"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	staffRepo "github.com/bookcore/appointment-service/internal/infra/storage/staff"
	"github.com/bookcore/appointment-service/internal/scheduling"
)

// UseCase lists the dates inside a horizon that still have bookable
// slots for a service, optionally narrowed to one staff member.
type UseCase struct {
	serviceRepo     ServiceRepository
	staffRepo       StaffRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	cache           AvailabilityCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case. cache may be nil.
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute computes the availability list.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: service=%d, staff=%v, days=%d",
		req.ServiceID, req.StaffID, req.HorizonDays)

	// 1. Validate input and apply the default horizon.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. The horizon starts today, date only.
	now := uc.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// 3. Serve from cache when possible.
	if uc.cache != nil {
		if dates, err := uc.cache.GetDates(ctx, req.ServiceID, req.StaffID, from, req.HorizonDays); err == nil {
			uc.logger.Info("GetAvailableDates: cache hit for service=%d", req.ServiceID)
			return uc.respond(req, from, dates), nil
		}
	}

	// 4. Load the service rules.
	service, err := uc.serviceRepo.GetRules(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableDates: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.Active {
		uc.logger.Warn("GetAvailableDates: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 5. Load the staff rules when a staff member is requested.
	staff, err := uc.loadStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 6. Load the business-wide schedule configuration.
	businessHours, calendar, err := uc.loadScheduleConfig(ctx, staff)
	if err != nil {
		return nil, err
	}

	// 7. Booking counts per date for the whole horizon in one query.
	to := from.AddDate(0, 0, req.HorizonDays-1)
	counts, err := uc.appointmentRepo.CountActivePerDate(ctx, req.ServiceID, req.StaffID, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	// 8. Walk the horizon and keep the dates that produce slots.
	resolved := scheduling.ResolveWorkingHours(service, staff, businessHours)
	dates := make([]domain.DateAvailability, 0, req.HorizonDays)
	for offset := 0; offset < req.HorizonDays; offset++ {
		date := from.AddDate(0, 0, offset)
		if calendar.IsDayOff(date) {
			continue
		}

		slots := scheduling.GenerateSlots(date, resolved, businessHours,
			service.DurationMinutes, service.PreBufferMinutes(), service.PostBufferMinutes())
		if len(slots) == 0 {
			continue
		}

		booked := counts[date.Format(domain.DateFormat)]
		dates = append(dates, scheduling.CountForDate(date, slots, booked))
	}

	// 9. Cache the result. A cache failure is not a request failure.
	if uc.cache != nil {
		if err := uc.cache.SetDates(ctx, req.ServiceID, req.StaffID, from, req.HorizonDays, dates); err != nil {
			uc.logger.Warn("GetAvailableDates: failed to cache result: %v", err)
		}
	}

	uc.logger.Info("GetAvailableDates: service=%d, %d bookable dates in %d days",
		req.ServiceID, len(dates), req.HorizonDays)

	return uc.respond(req, from, dates), nil
}

func (uc *UseCase) loadStaff(ctx context.Context, req *Request) (*domain.StaffRules, error) {
	if req.StaffID == nil {
		return nil, nil
	}

	staff, err := uc.staffRepo.GetRules(ctx, *req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableDates: staff id=%d not found", *req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.Active {
		uc.logger.Warn("GetAvailableDates: staff id=%d is inactive", *req.StaffID)
		return nil, ErrStaffNotFound
	}

	assigned, err := uc.serviceRepo.IsStaffAssigned(ctx, *req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to check assignment: %v", err)
		return nil, fmt.Errorf("%w: failed to check staff assignment: %v", ErrInternal, err)
	}
	if !assigned {
		uc.logger.Warn("GetAvailableDates: staff id=%d is not assigned to service id=%d",
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
		uc.logger.Error("GetAvailableDates: failed to get business hours: %v", err)
		return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	holidaysEnabled, err := uc.scheduleRepo.HolidaysEnabled(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to read holidays gate: %v", err)
		return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to read holidays setting: %v", ErrInternal, err)
	}

	var holidays []domain.HolidaySpec
	if holidaysEnabled {
		if holidays, err = uc.scheduleRepo.GetBusinessHolidays(ctx); err != nil {
			uc.logger.Error("GetAvailableDates: failed to get holidays: %v", err)
			return nil, scheduling.Calendar{}, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
		}
	}

	var staffDaysOff []domain.HolidaySpec
	if staff != nil {
		staffDaysOff = staff.DaysOff
	}

	return businessHours, scheduling.NewCalendar(holidaysEnabled, holidays, staffDaysOff), nil
}

func (uc *UseCase) respond(req *Request, from time.Time, dates []domain.DateAvailability) *Response {
	return &Response{
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		From:        from,
		HorizonDays: req.HorizonDays,
		Dates:       dates,
	}
}
