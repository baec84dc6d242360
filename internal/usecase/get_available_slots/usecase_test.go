package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcore/appointment-service/internal/domain"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	"github.com/bookcore/appointment-service/internal/scheduling"
	"github.com/bookcore/appointment-service/pkg/ptr"
	"github.com/bookcore/appointment-service/pkg/types"
)

type fakeServiceRepo struct {
	rules    *domain.ServiceRules
	err      error
	assigned bool
}

func (f *fakeServiceRepo) GetRules(ctx context.Context, serviceID int64) (*domain.ServiceRules, error) {
	return f.rules, f.err
}

func (f *fakeServiceRepo) IsStaffAssigned(ctx context.Context, staffID, serviceID int64) (bool, error) {
	return f.assigned, nil
}

type fakeStaffRepo struct {
	rules *domain.StaffRules
	err   error
}

func (f *fakeStaffRepo) GetRules(ctx context.Context, staffID int64) (*domain.StaffRules, error) {
	return f.rules, f.err
}

type fakeScheduleRepo struct {
	hours           domain.WeeklySchedule
	holidays        []domain.HolidaySpec
	holidaysEnabled bool
}

func (f *fakeScheduleRepo) GetBusinessHours(ctx context.Context) (domain.WeeklySchedule, error) {
	return f.hours, nil
}

func (f *fakeScheduleRepo) GetBusinessHolidays(ctx context.Context) ([]domain.HolidaySpec, error) {
	return f.holidays, nil
}

func (f *fakeScheduleRepo) HolidaysEnabled(ctx context.Context) (bool, error) {
	return f.holidaysEnabled, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListOnDate(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Monday 2024-06-10.
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func mondayHours(start, end string) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		time.Monday: {
			Enabled: true,
			Ranges: []domain.HourRange{
				{Start: types.TimeString(start), End: types.TimeString(end)},
			},
		},
	}
}

func activeService() *domain.ServiceRules {
	return &domain.ServiceRules{
		ID:              1,
		Name:            "Consultation",
		Active:          true,
		DurationMinutes: 30,
	}
}

func appointment(staffID, customerID *int64, start, end string) *domain.Appointment {
	return &domain.Appointment{
		ID:         1,
		ServiceID:  1,
		StaffID:    staffID,
		CustomerID: customerID,
		Date:       monday,
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
		Status:     domain.StatusConfirmed,
	}
}

func newSlotsUseCase(schedules ScheduleRepository, appointments AppointmentRepository) *UseCase {
	return NewUseCase(
		&fakeServiceRepo{rules: activeService(), assigned: true},
		&fakeStaffRepo{rules: &domain.StaffRules{ID: 7, Active: true}},
		schedules,
		appointments,
		nopLogger{},
	)
}

func TestExecute_AllSlotsAvailable(t *testing.T) {
	uc := newSlotsUseCase(
		&fakeScheduleRepo{hours: mondayHours("09:00", "12:00"), holidaysEnabled: true},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
		assert.Empty(t, slot.Reason)
	}
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[0].EndTime)
}

func TestExecute_StaffConflictMarksOverlappingSlots(t *testing.T) {
	staffID := ptr.Ptr(int64(7))
	booked := appointment(staffID, nil, "10:15", "10:45")

	uc := newSlotsUseCase(
		&fakeScheduleRepo{hours: mondayHours("09:00", "12:00"), holidaysEnabled: true},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{booked}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      monday,
		StaffID:   staffID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 6)

	// 10:00-10:30 and 10:30-11:00 both overlap 10:15-10:45.
	blocked := map[types.TimeString]bool{"10:00": true, "10:30": true}
	for _, slot := range resp.Slots {
		if blocked[slot.StartTime] {
			assert.False(t, slot.Available, "slot %s", slot.StartTime)
			assert.Equal(t, scheduling.ReasonStaffUnavailable, slot.Reason)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.StartTime)
		}
	}
}

func TestExecute_CustomerConflictReason(t *testing.T) {
	customerID := ptr.Ptr(int64(100))
	booked := appointment(ptr.Ptr(int64(9)), customerID, "09:00", "09:30")

	uc := newSlotsUseCase(
		&fakeScheduleRepo{hours: mondayHours("09:00", "10:00"), holidaysEnabled: true},
		&fakeAppointmentRepo{appointments: []*domain.Appointment{booked}},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:  1,
		Date:       monday,
		CustomerID: customerID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.False(t, resp.Slots[0].Available)
	assert.Equal(t, scheduling.ReasonCustomerBusy, resp.Slots[0].Reason)
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_HolidayYieldsEmptyList(t *testing.T) {
	holiday := domain.SingleHoliday(monday)

	uc := newSlotsUseCase(
		&fakeScheduleRepo{
			hours:           mondayHours("09:00", "12:00"),
			holidays:        []domain.HolidaySpec{holiday},
			holidaysEnabled: true,
		},
		&fakeAppointmentRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedWeekdayYieldsEmptyList(t *testing.T) {
	uc := newSlotsUseCase(
		&fakeScheduleRepo{hours: mondayHours("09:00", "12:00"), holidaysEnabled: true},
		&fakeAppointmentRepo{},
	)

	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BuffersShiftSlots(t *testing.T) {
	service := activeService()
	service.BufferEnabled = true
	service.PreBufferRaw = 10
	service.PostBufferRaw = 5

	uc := NewUseCase(
		&fakeServiceRepo{rules: service},
		&fakeStaffRepo{},
		&fakeScheduleRepo{hours: mondayHours("09:00", "12:00"), holidaysEnabled: true},
		&fakeAppointmentRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: monday})
	require.NoError(t, err)

	// Span 45, window 180 minutes: four slots starting at the pre buffer.
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, types.TimeString("09:10"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:40"), resp.Slots[0].EndTime)
}

func TestExecute_Errors(t *testing.T) {
	schedules := &fakeScheduleRepo{hours: mondayHours("09:00", "12:00"), holidaysEnabled: true}

	t.Run("service not found", func(t *testing.T) {
		uc := NewUseCase(
			&fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
			&fakeStaffRepo{},
			schedules,
			&fakeAppointmentRepo{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: monday})
		require.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("staff not assigned", func(t *testing.T) {
		uc := NewUseCase(
			&fakeServiceRepo{rules: activeService(), assigned: false},
			&fakeStaffRepo{rules: &domain.StaffRules{ID: 7, Active: true}},
			schedules,
			&fakeAppointmentRepo{},
			nopLogger{},
		)
		_, err := uc.Execute(context.Background(), &Request{
			ServiceID: 1,
			Date:      monday,
			StaffID:   ptr.Ptr(int64(7)),
		})
		require.ErrorIs(t, err, ErrStaffNotAssigned)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := newSlotsUseCase(schedules, &fakeAppointmentRepo{})
		_, err := uc.Execute(context.Background(), &Request{ServiceID: 1})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
