// Package appointment persists appointments and answers the day-level
// queries the availability and booking flows need.
package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/dbmetrics"
	"github.com/bookcore/appointment-service/pkg/psqlbuilder"
)

// Postgres error code for unique constraint violations.
const pqUniqueViolation = "23505"

var selectColumns = []string{
	"id",
	"reference",
	"service_id",
	"staff_id",
	"customer_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"service_name",
	"service_duration_minutes",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an appointment and fills in the generated fields.
// A unique index on (staff_id, booking_date, start_time) over active
// rows backs the conflict check; violations come back as
// ErrDuplicateSlot so callers can map them to a booking conflict.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"reference",
			"service_id",
			"staff_id",
			"customer_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"service_name",
			"service_duration_minutes",
			"notes",
		).
		Values(
			appt.Reference,
			appt.ServiceID,
			appt.StaffID,
			appt.CustomerID,
			appt.Date,
			appt.StartTime,
			appt.EndTime,
			appt.Status,
			appt.ServiceName,
			appt.ServiceDurationMinutes,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return nil, fmt.Errorf("%w: Create - %v", ErrDuplicateSlot, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID loads an appointment by its internal id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: GetByID - id %d", ErrAppointmentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListOnDate returns the active appointments on a date that involve
// the filter's staff member or customer. Inside a transaction the rows
// are locked with FOR UPDATE so two concurrent bookings for the same
// slot serialize on them.
func (r *Repository) ListOnDate(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	parties := squirrel.Or{}
	if filter.StaffID != nil {
		parties = append(parties, squirrel.Eq{"staff_id": *filter.StaffID})
	}
	if filter.CustomerID != nil {
		parties = append(parties, squirrel.Eq{"customer_id": *filter.CustomerID})
	}

	builder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"booking_date": filter.Date}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		OrderBy("start_time ASC")

	if len(parties) > 0 {
		builder = builder.Where(parties)
	}
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows, "ListOnDate")
}

// CountActivePerDate returns the number of active appointments per
// date for a service within [from, to], optionally narrowed to one
// staff member. Dates without appointments are absent from the map.
func (r *Repository) CountActivePerDate(
	ctx context.Context,
	serviceID int64,
	staffID *int64,
	from, to time.Time,
) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("booking_date", "COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		GroupBy("booking_date")

	if staffID != nil {
		builder = builder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountActivePerDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountActivePerDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			date  time.Time
			count int
		)
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("%w: CountActivePerDate - scan count: %v", ErrScanRow, err)
		}
		counts[date.Format(domain.DateFormat)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountActivePerDate - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// Cancel moves an appointment to a cancelled status and records the
// reason and timestamp.
func (r *Repository) Cancel(
	ctx context.Context,
	id int64,
	status domain.AppointmentStatus,
	reason *string,
) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: Cancel - id %d", ErrAppointmentNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListByCustomer returns a customer's appointments, newest first,
// optionally narrowed to one status.
func (r *Repository) ListByCustomer(
	ctx context.Context,
	customerID int64,
	status *domain.AppointmentStatus,
) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows, "ListByCustomer")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt                 domain.Appointment
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.Reference,
		&appt.ServiceID,
		&appt.StaffID,
		&appt.CustomerID,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.ServiceName,
		&appt.ServiceDurationMinutes,
		&appt.Notes,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows, op string) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}
