package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LV-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LV-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	lastStatus domain.BookingStatus
	lastTechID *int64
	rows       int64
	err        error
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if filter.UserID == nil {
		return f.list, nil
	}
	filtered := make([]*domain.Booking, 0)
	for _, b := range f.list {
		if b.UserID == *filter.UserID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (f *fakeBookingRepo) SetStatusAndTechnician(ctx context.Context, id int64, status domain.BookingStatus, techID *int64) error {
	if f.err != nil {
		return f.err
	}
	f.lastStatus = status
	f.lastTechID = techID
	return nil
}

func (f *fakeBookingRepo) CancelByOwner(ctx context.Context, id, ownerID int64) (int64, error) {
	return f.rows, f.err
}

func (f *fakeBookingRepo) RateByOwner(ctx context.Context, id, ownerID int64, rating int) (int64, error) {
	return f.rows, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          10,
		UserID:      7,
		VehicleID:   3,
		ServiceIDs:  domain.ServiceIDList{1, 2},
		TotalPrice:  19000,
		Type:        domain.TypeHomeVisit,
		ScheduledAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Status:      domain.StatusScheduled,
		PaymentMode: domain.PaymentOnSite,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: testBooking()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, []int64{1, 2}, resp.ServiceIDs)
	assert.Equal(t, "scheduled", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FiltersByUser(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{
		testBooking(),
		{ID: 11, UserID: 8, Status: domain.StatusCompleted, ServiceIDs: domain.ServiceIDList{1}},
	}}
	svc := NewService(repo, nopLogger{})

	all, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	mine, err := svc.List(context.Background(), &models.ListBookingsRequest{UserID: ptr.Ptr(int64(7))})
	require.NoError(t, err)
	require.Len(t, mine.Bookings, 1)
	assert.Equal(t, int64(10), mine.Bookings[0].ID)
}

func TestUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	// Статус перезаписывается безусловно, граф переходов не ограничивается
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := NewService(repo, nopLogger{})

	for _, status := range []string{"in_progress", "completed", "cancelled", "scheduled"} {
		err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: status})
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatus(status), repo.lastStatus)
	}
}

func TestUpdateStatus_AssignsAndClearsTechnician(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		Status:       "in_progress",
		TechnicianID: ptr.Ptr(int64(4)),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastTechID)
	assert.Equal(t, int64(4), *repo.lastTechID)

	// nil снимает назначение
	err = svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "scheduled"})
	require.NoError(t, err)
	assert.Nil(t, repo.lastTechID)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{Status: "paused"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "completed"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ForeignBookingIsNoop(t *testing.T) {
	// Чужое или несуществующее бронирование: ноль строк, без ошибки
	svc := NewService(&fakeBookingRepo{rows: 0}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 999})

	assert.NoError(t, err)
}

func TestCancel_OwnBooking(t *testing.T) {
	svc := NewService(&fakeBookingRepo{rows: 1}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})

	assert.NoError(t, err)
}

func TestCancel_RepositoryError(t *testing.T) {
	svc := NewService(&fakeBookingRepo{err: errors.New("connection refused")}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestRate_InvalidRating(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	for _, rating := range []int{0, -1, 6} {
		err := svc.Rate(context.Background(), 10, &models.RateBookingRequest{UserID: 7, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestRate_ForeignBookingIsNoop(t *testing.T) {
	svc := NewService(&fakeBookingRepo{rows: 0}, nopLogger{})

	err := svc.Rate(context.Background(), 10, &models.RateBookingRequest{UserID: 999, Rating: 5})

	assert.NoError(t, err)
}

func TestRate_OwnBooking(t *testing.T) {
	svc := NewService(&fakeBookingRepo{rows: 1}, nopLogger{})

	err := svc.Rate(context.Background(), 10, &models.RateBookingRequest{UserID: 7, Rating: 4})

	assert.NoError(t, err)
}
