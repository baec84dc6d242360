package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/ptr"
	"github.com/bookcore/appointment-service/pkg/types"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func appointmentRows(appts ...domain.Appointment) *sqlmock.Rows {
	rows := sqlmock.NewRows(selectColumns)
	for _, a := range appts {
		rows.AddRow(
			a.ID,
			a.Reference,
			a.ServiceID,
			a.StaffID,
			a.CustomerID,
			a.Date,
			string(a.StartTime),
			string(a.EndTime),
			string(a.Status),
			a.ServiceName,
			a.ServiceDurationMinutes,
			a.Notes,
			a.CancellationReason,
			a.CancelledAt,
			a.CreatedAt,
			a.UpdatedAt,
		)
	}
	return rows
}

func sampleAppointment() domain.Appointment {
	return domain.Appointment{
		ID:                     42,
		Reference:              "6f1c2f6e-8f1a-4bb1-9a6e-0c2d3e4f5a6b",
		ServiceID:              1,
		StaffID:                ptr.Ptr(int64(7)),
		CustomerID:             ptr.Ptr(int64(100)),
		Date:                   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:              types.TimeString("10:00"),
		EndTime:                types.TimeString("10:30"),
		Status:                 domain.StatusConfirmed,
		ServiceName:            "Consultation",
		ServiceDurationMinutes: 30,
		CreatedAt:              time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:              time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), now, now))

	appt := sampleAppointment()
	appt.ID = 0

	created, err := repo.Create(context.Background(), &appt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateSlot(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505"})

	appt := sampleAppointment()
	_, err := repo.Create(context.Background(), &appt)
	require.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newTestRepository(t)

	want := sampleAppointment()
	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(want.ID).
		WillReturnRows(appointmentRows(want))

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.Reference, got.Reference)
	assert.Equal(t, want.StartTime, got.StartTime)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(int64(999)).
		WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListOnDate(t *testing.T) {
	repo, mock := newTestRepository(t)

	first := sampleAppointment()
	second := sampleAppointment()
	second.ID = 43
	second.StartTime = types.TimeString("11:00")
	second.EndTime = types.TimeString("11:30")

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnRows(appointmentRows(first, second))

	got, err := repo.ListOnDate(context.Background(), domain.DayFilter{
		Date:    first.Date,
		StaffID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, types.TimeString("11:00"), got[1].StartTime)
}

func TestRepository_ListOnDate_NoParties(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnRows(appointmentRows())

	got, err := repo.ListOnDate(context.Background(), domain.DayFilter{
		Date: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_CountActivePerDate(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := sqlmock.NewRows([]string{"booking_date", "count"}).
		AddRow(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 3).
		AddRow(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), 1)

	mock.ExpectQuery("SELECT booking_date, COUNT").
		WillReturnRows(rows)

	counts, err := repo.CountActivePerDate(
		context.Background(),
		1,
		ptr.Ptr(int64(7)),
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-06-10": 3, "2024-06-11": 1}, counts)
}

func TestRepository_Cancel(t *testing.T) {
	repo, mock := newTestRepository(t)

	cancelled := sampleAppointment()
	cancelled.Status = domain.StatusCancelledByCustomer
	cancelled.CancellationReason = ptr.Ptr("plans changed")
	cancelled.CancelledAt = ptr.Ptr(time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC))

	mock.ExpectQuery("UPDATE appointments").
		WillReturnRows(appointmentRows(cancelled))

	got, err := repo.Cancel(
		context.Background(),
		cancelled.ID,
		domain.StatusCancelledByCustomer,
		ptr.Ptr("plans changed"),
	)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByCustomer, got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "plans changed", *got.CancellationReason)
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("UPDATE appointments").
		WillReturnRows(appointmentRows())

	_, err := repo.Cancel(context.Background(), 999, domain.StatusCancelledByBusiness, nil)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_ListByCustomer(t *testing.T) {
	repo, mock := newTestRepository(t)

	appt := sampleAppointment()
	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WillReturnRows(appointmentRows(appt))

	status := domain.StatusConfirmed
	got, err := repo.ListByCustomer(context.Background(), 100, &status)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, appt.Reference, got[0].Reference)
}
