package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	"github.com/m04kA/LV-BookingService/pkg/ptr"
)

type fakeStatsRepo struct {
	totals  *domain.StatsTotals
	monthly []*domain.MonthlyStat
	err     error
}

func (f *fakeStatsRepo) GetTotals(ctx context.Context) (*domain.StatsTotals, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.totals, nil
}

func (f *fakeStatsRepo) GetMonthlyStats(ctx context.Context) ([]*domain.MonthlyStat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.monthly, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGet(t *testing.T) {
	repo := &fakeStatsRepo{
		totals: &domain.StatsTotals{Bookings: 12, Revenue: 180000, AverageRating: ptr.Ptr(4.5)},
		monthly: []*domain.MonthlyStat{
			{Month: "2026-07", Bookings: 5, Revenue: 70000},
			{Month: "2026-08", Bookings: 7, Revenue: 110000},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.TotalBookings)
	assert.Equal(t, int64(180000), resp.TotalRevenue)
	require.NotNil(t, resp.AverageRating)
	assert.Equal(t, 4.5, *resp.AverageRating)
	require.Len(t, resp.Monthly, 2)
	assert.Equal(t, "2026-07", resp.Monthly[0].Month)
}

func TestGet_NoRatingsYet(t *testing.T) {
	repo := &fakeStatsRepo{totals: &domain.StatsTotals{}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Nil(t, resp.AverageRating)
	assert.Empty(t, resp.Monthly)
}

func TestGet_RepositoryError(t *testing.T) {
	svc := NewService(&fakeStatsRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Get(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
