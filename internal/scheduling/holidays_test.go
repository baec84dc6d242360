package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookcore/appointment-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDayOffSingleDate(t *testing.T) {
	cal := NewCalendar(true, []domain.HolidaySpec{
		domain.SingleHoliday(date(2024, 12, 25)),
	}, nil)

	assert.True(t, cal.IsDayOff(date(2024, 12, 25)))
	assert.False(t, cal.IsDayOff(date(2024, 12, 24)))
	assert.False(t, cal.IsDayOff(date(2024, 12, 26)))

	// Time-of-day on the query never matters.
	assert.True(t, cal.IsDayOff(time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC)))
}

func TestIsDayOffRange(t *testing.T) {
	cal := NewCalendar(true, []domain.HolidaySpec{
		domain.HolidayRange(date(2024, 12, 24), date(2024, 12, 26)),
	}, nil)

	assert.False(t, cal.IsDayOff(date(2024, 12, 23)))
	assert.True(t, cal.IsDayOff(date(2024, 12, 24)))
	assert.True(t, cal.IsDayOff(date(2024, 12, 25)))
	assert.True(t, cal.IsDayOff(date(2024, 12, 26)))
	assert.False(t, cal.IsDayOff(date(2024, 12, 27)))
}

func TestIsDayOffStaffOverride(t *testing.T) {
	business := []domain.HolidaySpec{domain.SingleHoliday(date(2024, 12, 25))}
	staffDaysOff := []domain.HolidaySpec{domain.SingleHoliday(date(2024, 7, 4))}

	withStaff := NewCalendar(true, business, staffDaysOff)
	withoutStaff := NewCalendar(true, business, nil)

	// The staff list fully replaces the business list, never merges.
	assert.False(t, withStaff.IsDayOff(date(2024, 12, 25)))
	assert.True(t, withStaff.IsDayOff(date(2024, 7, 4)))

	assert.True(t, withoutStaff.IsDayOff(date(2024, 12, 25)))
	assert.False(t, withoutStaff.IsDayOff(date(2024, 7, 4)))
}

func TestIsDayOffFeatureGate(t *testing.T) {
	cal := NewCalendar(false, []domain.HolidaySpec{
		domain.SingleHoliday(date(2024, 12, 25)),
	}, nil)

	assert.False(t, cal.IsDayOff(date(2024, 12, 25)))
}

func TestIsDayOffEmptyLists(t *testing.T) {
	assert.False(t, NewCalendar(true, nil, nil).IsDayOff(date(2024, 1, 1)))
}
