package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookcore/appointment-service/internal/domain"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	"github.com/bookcore/appointment-service/pkg/ptr"
)

type fakeServiceRepo struct {
	rules    map[int64]*domain.ServiceRules
	active   []domain.ServiceRules
	listErr  error
	rulesErr error
}

func (f *fakeServiceRepo) GetRules(_ context.Context, serviceID int64) (*domain.ServiceRules, error) {
	if f.rulesErr != nil {
		return nil, f.rulesErr
	}
	rules, ok := f.rules[serviceID]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return rules, nil
}

func (f *fakeServiceRepo) ListActive(_ context.Context) ([]domain.ServiceRules, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active, nil
}

type fakeStaffRepo struct {
	staff []domain.StaffRules
	err   error
}

func (f *fakeStaffRepo) ListByService(_ context.Context, _ int64) ([]domain.StaffRules, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.staff, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListServices(t *testing.T) {
	repo := &fakeServiceRepo{
		active: []domain.ServiceRules{
			{ID: 1, Name: "Consultation", Active: true, DurationMinutes: 30, PriceCents: ptr.Ptr(int64(5000))},
			{ID: 2, Name: "Follow-up", Active: true, DurationMinutes: 15},
		},
	}
	svc := NewService(repo, &fakeStaffRepo{}, nopLogger{})

	resp, err := svc.ListServices(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Consultation", resp.Services[0].Name)
	assert.Equal(t, 30, resp.Services[0].DurationMinutes)
	require.NotNil(t, resp.Services[0].PriceCents)
	assert.Equal(t, int64(5000), *resp.Services[0].PriceCents)
	assert.Nil(t, resp.Services[1].PriceCents)
}

func TestListServices_RepositoryError(t *testing.T) {
	repo := &fakeServiceRepo{listErr: errors.New("db down")}
	svc := NewService(repo, &fakeStaffRepo{}, nopLogger{})

	_, err := svc.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListStaffForService(t *testing.T) {
	repo := &fakeServiceRepo{
		rules: map[int64]*domain.ServiceRules{
			1: {ID: 1, Name: "Consultation", Active: true, DurationMinutes: 30},
		},
	}
	staff := &fakeStaffRepo{
		staff: []domain.StaffRules{
			{ID: 10, Name: "Alice", Active: true},
			{ID: 11, Name: "Bob", Active: true},
		},
	}
	svc := NewService(repo, staff, nopLogger{})

	resp, err := svc.ListStaffForService(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Alice", resp.Staff[0].Name)
}

func TestListStaffForService_ServiceNotFound(t *testing.T) {
	svc := NewService(&fakeServiceRepo{}, &fakeStaffRepo{}, nopLogger{})

	_, err := svc.ListStaffForService(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestListStaffForService_StaffRepositoryError(t *testing.T) {
	repo := &fakeServiceRepo{
		rules: map[int64]*domain.ServiceRules{
			1: {ID: 1, Name: "Consultation", Active: true},
		},
	}
	staff := &fakeStaffRepo{err: errors.New("db down")}
	svc := NewService(repo, staff, nopLogger{})

	_, err := svc.ListStaffForService(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}
