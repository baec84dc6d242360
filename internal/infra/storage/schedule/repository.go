// Package schedule reads the business-wide scheduling configuration:
// weekly working hours, holidays and the holidays feature gate.
package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/pkg/dbmetrics"
	"github.com/bookcore/appointment-service/pkg/psqlbuilder"
	"github.com/bookcore/appointment-service/pkg/types"
)

// Settings key gating the holiday calendar.
const holidaysEnabledKey = "holidays_enabled"

// Repository reads business schedule configuration.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours returns the business default weekly schedule.
// Ranges come back one row each; weekdays with no rows are absent from
// the map and therefore not bookable.
func (r *Repository) GetBusinessHours(ctx context.Context) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"start_time",
		"end_time",
	).
		From("business_hours").
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return ScanWeeklySchedule(rows, "GetBusinessHours")
}

// GetBusinessHolidays returns the business holiday list. Single-day
// holidays are stored with date_from = date_to.
func (r *Repository) GetBusinessHolidays(ctx context.Context) ([]domain.HolidaySpec, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date_from", "date_to").
		From("holidays").
		OrderBy("date_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHolidays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHolidays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]domain.HolidaySpec, 0)
	for rows.Next() {
		var from, to time.Time
		if err := rows.Scan(&from, &to); err != nil {
			return nil, fmt.Errorf("%w: GetBusinessHolidays - scan holiday: %v", ErrScanRow, err)
		}
		holidays = append(holidays, domain.HolidayRange(from, to))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHolidays - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// HolidaysEnabled reads the holiday feature gate from settings.
// A missing key means enabled, matching the product default.
func (r *Repository) HolidaysEnabled(ctx context.Context) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": holidaysEnabledKey}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HolidaysEnabled - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HolidaysEnabled - scan setting: %v", ErrScanRow, err)
	}

	return value != "false" && value != "0" && value != "off", nil
}

// ScanWeeklySchedule folds (weekday, enabled, start, end) rows into a
// WeeklySchedule. Shared with the service and staff repositories,
// which store per-entity hours in the same shape.
func ScanWeeklySchedule(rows *sql.Rows, op string) (domain.WeeklySchedule, error) {
	result := make(domain.WeeklySchedule)

	for rows.Next() {
		var (
			weekday    int
			enabled    bool
			start, end sql.NullString
		)
		if err := rows.Scan(&weekday, &enabled, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: %s - scan hours row: %v", ErrScanRow, op, err)
		}

		day := time.Weekday(weekday)
		hours := result[day]
		hours.Enabled = hours.Enabled || enabled

		if enabled && start.Valid && end.Valid {
			hours.Ranges = append(hours.Ranges, domain.HourRange{
				Start: types.TimeString(start.String),
				End:   types.TimeString(end.String),
			})
		}
		result[day] = hours
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}
