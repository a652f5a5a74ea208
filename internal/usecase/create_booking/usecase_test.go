package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	"github.com/m04kA/LV-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	created *domain.Booking
	nextID  int64
	err     error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = booking
	booking.ID = f.nextID
	booking.CreatedAt = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return booking, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID:      7,
		VehicleID:   3,
		ServiceIDs:  []int64{1, 2},
		TotalPrice:  19000,
		Type:        domain.TypeHomeVisit,
		Address:     ptr.Ptr("12 rue Didouche Mourad, Alger"),
		ScheduledAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		PaymentMode: domain.PaymentOnSite,
	}
}

func TestExecute_CreatesScheduledBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 42}
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Nil(t, resp.TechnicianID)
	assert.Equal(t, 1, tx.calls)

	// Новое бронирование всегда создается запланированным, без техника и оценки
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusScheduled, repo.created.Status)
	assert.Nil(t, repo.created.TechnicianID)
	assert.Nil(t, repo.created.Rating)
}

func TestExecute_StoresConfirmedTotalVerbatim(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	// Итог из запроса записывается как есть, без пересчета по каталогу
	req := validRequest()
	req.TotalPrice = 123456

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(123456), resp.TotalPrice)
	assert.Equal(t, int64(123456), repo.created.TotalPrice)
}

func TestExecute_SnapshotsServiceIDs(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ServiceIDs = []int64{5, 1, 2}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{5, 1, 2}, resp.ServiceIDs)
}

func TestExecute_EmptyServices(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrEmptyServices)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero vehicle", func(r *Request) { r.VehicleID = 0 }},
		{"negative total", func(r *Request) { r.TotalPrice = -1 }},
		{"unknown type", func(r *Request) { r.Type = "teleport" }},
		{"zero schedule", func(r *Request) { r.ScheduledAt = time.Time{} }},
		{"unknown payment mode", func(r *Request) { r.PaymentMode = "crypto" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeBookingRepo{}, &fakeTxManager{}, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AddressOptionalForHomeVisit(t *testing.T) {
	repo := &fakeBookingRepo{nextID: 1}
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Address = nil
	req.Latitude = nil
	req.Longitude = nil

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}
