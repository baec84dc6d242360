// Package service loads service booking rules: duration, buffers and
// the optional per-service weekly hours override.
package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bookcore/appointment-service/internal/domain"
	"github.com/bookcore/appointment-service/internal/infra/storage/schedule"
	"github.com/bookcore/appointment-service/pkg/dbmetrics"
	"github.com/bookcore/appointment-service/pkg/psqlbuilder"
)

// Repository reads service rules.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRules loads a service with durations normalized to minutes and
// its weekly hours override attached. Returns ErrServiceNotFound when
// the id does not exist.
func (r *Repository) GetRules(ctx context.Context, serviceID int64) (*domain.ServiceRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"duration_value",
		"duration_unit",
		"buffer_enabled",
		"pre_buffer_value",
		"pre_buffer_unit",
		"post_buffer_value",
		"post_buffer_unit",
		"price_cents",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - build select query: %v", ErrBuildQuery, err)
	}

	var (
		rules         domain.ServiceRules
		durationValue int
		durationUnit  string
		preValue      int
		preUnit       string
		postValue     int
		postUnit      string
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&rules.Name,
		&rules.Active,
		&durationValue,
		&durationUnit,
		&rules.BufferEnabled,
		&preValue,
		&preUnit,
		&postValue,
		&postUnit,
		&rules.PriceCents,
		&rules.CreatedAt,
		&rules.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: GetRules - id %d", ErrServiceNotFound, serviceID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - scan service: %v", ErrScanRow, err)
	}

	if rules.DurationMinutes, err = normalizeToMinutes(durationValue, durationUnit); err != nil {
		return nil, fmt.Errorf("%w: GetRules - duration: %v", ErrScanRow, err)
	}
	if rules.PreBufferRaw, err = normalizeToMinutes(preValue, preUnit); err != nil {
		return nil, fmt.Errorf("%w: GetRules - pre buffer: %v", ErrScanRow, err)
	}
	if rules.PostBufferRaw, err = normalizeToMinutes(postValue, postUnit); err != nil {
		return nil, fmt.Errorf("%w: GetRules - post buffer: %v", ErrScanRow, err)
	}

	hours, err := r.getServiceHours(ctx, executor, serviceID)
	if err != nil {
		return nil, err
	}
	rules.Hours = hours

	return &rules, nil
}

// getServiceHours loads the per-service weekly override. No rows means
// no override, so the business default applies.
func (r *Repository) getServiceHours(
	ctx context.Context,
	executor dbmetrics.DBExecutor,
	serviceID int64,
) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"weekday",
		"enabled",
		"start_time",
		"end_time",
	).
		From("service_hours").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getServiceHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getServiceHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours, err := schedule.ScanWeeklySchedule(rows, "getServiceHours")
	if err != nil {
		return nil, err
	}
	if len(hours) == 0 {
		return nil, nil
	}
	return hours, nil
}

// IsStaffAssigned reports whether the staff member is assigned to the
// service.
func (r *Repository) IsStaffAssigned(ctx context.Context, staffID, serviceID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("service_staff").
		Where(squirrel.Eq{"staff_id": staffID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsStaffAssigned - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsStaffAssigned - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListActive returns the active services ordered by name, without the
// per-service hours attached.
func (r *Repository) ListActive(ctx context.Context) ([]domain.ServiceRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"active",
		"duration_value",
		"duration_unit",
		"price_cents",
		"created_at",
		"updated_at",
	).
		From("services").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ServiceRules, 0)
	for rows.Next() {
		var (
			rules         domain.ServiceRules
			durationValue int
			durationUnit  string
		)
		err := rows.Scan(
			&rules.ID,
			&rules.Name,
			&rules.Active,
			&durationValue,
			&durationUnit,
			&rules.PriceCents,
			&rules.CreatedAt,
			&rules.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan service: %v", ErrScanRow, err)
		}
		if rules.DurationMinutes, err = normalizeToMinutes(durationValue, durationUnit); err != nil {
			return nil, fmt.Errorf("%w: ListActive - duration: %v", ErrScanRow, err)
		}
		services = append(services, rules)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
