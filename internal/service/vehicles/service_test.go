package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	vehicleRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/vehicle"
	"github.com/m04kA/LV-BookingService/pkg/ptr"
)

type fakeVehicleRepo struct {
	vehicles map[int64]*domain.Vehicle
	nextID   int64
	err      error
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int64]*domain.Vehicle), nextID: 1}
}

func (f *fakeVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	v.ID = f.nextID
	f.nextID++
	f.vehicles[v.ID] = v
	return v, nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, id int64, v *domain.Vehicle) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.vehicles[id]
	if !ok || existing.UserID != v.UserID {
		return vehicleRepo.ErrVehicleNotFound
	}
	v.ID = id
	f.vehicles[id] = v
	return nil
}

func (f *fakeVehicleRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	list := make([]*domain.Vehicle, 0)
	for id := int64(1); id < f.nextID; id++ {
		v, ok := f.vehicles[id]
		if ok && v.UserID == userID {
			list = append(list, v)
		}
	}
	return list, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUpsert_CreatesWithoutID(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	resp, err := svc.Upsert(context.Background(), 7, &UpsertVehicleRequest{
		Make:  "Renault",
		Model: "Clio",
		Plate: "16-123-456",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestUpsert_UpdatesOwnVehicle(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Upsert(context.Background(), 7, &UpsertVehicleRequest{
		Make: "Renault", Model: "Clio", Plate: "16-123-456",
	})
	require.NoError(t, err)

	updated, err := svc.Upsert(context.Background(), 7, &UpsertVehicleRequest{
		ID:      &created.ID,
		Make:    "Renault",
		Model:   "Clio",
		Plate:   "16-999-456",
		Mileage: ptr.Ptr(int64(85000)),
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "16-999-456", updated.Plate)
}

func TestUpsert_ForeignVehicleNotFound(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Upsert(context.Background(), 7, &UpsertVehicleRequest{
		Make: "Renault", Model: "Clio", Plate: "16-123-456",
	})
	require.NoError(t, err)

	// Чужой id неотличим от несуществующего
	_, err = svc.Upsert(context.Background(), 8, &UpsertVehicleRequest{
		ID: &created.ID, Make: "Peugeot", Model: "208", Plate: "31-000-111",
	})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestUpsert_Validation(t *testing.T) {
	svc := NewService(newFakeVehicleRepo(), nopLogger{})

	tests := []struct {
		name string
		req  *UpsertVehicleRequest
	}{
		{"empty make", &UpsertVehicleRequest{Model: "Clio", Plate: "x"}},
		{"empty model", &UpsertVehicleRequest{Make: "Renault", Plate: "x"}},
		{"empty plate", &UpsertVehicleRequest{Make: "Renault", Model: "Clio"}},
		{"negative mileage", &UpsertVehicleRequest{Make: "Renault", Model: "Clio", Plate: "x", Mileage: ptr.Ptr(int64(-1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), 7, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListByUser_OnlyOwnVehicles(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Upsert(context.Background(), 7, &UpsertVehicleRequest{Make: "Renault", Model: "Clio", Plate: "a"})
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), 8, &UpsertVehicleRequest{Make: "Peugeot", Model: "208", Plate: "b"})
	require.NoError(t, err)

	resp, err := svc.ListByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "Renault", resp.Vehicles[0].Make)
}
