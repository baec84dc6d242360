// Package staff loads staff scheduling rules: weekday availability and
// personal days off.
package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/internal/infra/storage/schedule"
	"github.com/bookcore/appointment-service/pkg/dbmetrics"
	"github.com/bookcore/appointment-service/pkg/psqlbuilder"
)

// Repository reads staff rules.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRules loads a staff member with working hours and days off
// attached. Returns ErrStaffNotFound when the id does not exist.
// WorkingHours comes back nil when no rows exist, which downstream
// treats as "no weekday gating".
func (r *Repository) GetRules(ctx context.Context, staffID int64) (*domain.StaffRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"created_at",
		"updated_at",
	).
		From("staff").
		Where(squirrel.Eq{"id": staffID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - build select query: %v", ErrBuildQuery, err)
	}

	var rules domain.StaffRules
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&rules.Name,
		&rules.Active,
		&rules.CreatedAt,
		&rules.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: GetRules - id %d", ErrStaffNotFound, staffID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - scan staff: %v", ErrScanRow, err)
	}

	if rules.WorkingHours, err = r.getWorkingHours(ctx, executor, staffID); err != nil {
		return nil, err
	}
	if rules.DaysOff, err = r.getDaysOff(ctx, executor, staffID); err != nil {
		return nil, err
	}

	return &rules, nil
}

func (r *Repository) getWorkingHours(
	ctx context.Context,
	executor dbmetrics.DBExecutor,
	staffID int64,
) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"start_time",
		"end_time",
	).
		From("staff_working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours, err := schedule.ScanWeeklySchedule(rows, "getWorkingHours")
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return nil, nil
	}
	return hours, nil
}

func (r *Repository) getDaysOff(
	ctx context.Context,
	executor dbmetrics.DBExecutor,
	staffID int64,
) ([]domain.HolidaySpec, error) {
	query, args, err := psqlbuilder.Select("date_from", "date_to").
		From("staff_days_off").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("date_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getDaysOff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysOff := make([]domain.HolidaySpec, 0)
	for rows.Next() {
		var from, to time.Time
		if err := rows.Scan(&from, &to); err != nil {
			return nil, fmt.Errorf("%w: getDaysOff - scan day off: %v", ErrScanRow, err)
		}
		daysOff = append(daysOff, domain.HolidayRange(from, to))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getDaysOff - rows error: %v", ErrScanRow, err)
	}

	return daysOff, nil
}

// ListByService returns the active staff assigned to a service,
// ordered by name. Hours and days off are not attached.
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]domain.StaffRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.name",
		"s.active",
		"s.created_at",
		"s.updated_at",
	).
		From("staff s").
		Join("service_staff ss ON ss.staff_id = s.id").
		Where(squirrel.Eq{"ss.service_id": serviceID, "s.active": true}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]domain.StaffRules, 0)
	for rows.Next() {
		var rules domain.StaffRules
		err := rows.Scan(
			&rules.ID,
			&rules.Name,
			&rules.Active,
			&rules.CreatedAt,
			&rules.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByService - scan staff: %v", ErrScanRow, err)
		}
		members = append(members, rules)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByService - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}
