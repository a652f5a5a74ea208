package compute_quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/settings"
)

type fakeCatalogRepo struct {
	items []*domain.ServiceItem
	err   error
}

func (f *fakeCatalogRepo) List(ctx context.Context, activeOnly bool) ([]*domain.ServiceItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !activeOnly {
		return f.items, nil
	}
	active := make([]*domain.ServiceItem, 0, len(f.items))
	for _, item := range f.items {
		if item.Active {
			active = append(active, item)
		}
	}
	return active, nil
}

type fakeSettingsRepo struct {
	values map[string]string
	err    error
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.values[key]
	if !ok {
		return "", settingsRepo.ErrKeyNotFound
	}
	return value, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{items: []*domain.ServiceItem{
		{ID: 1, Name: "Vidange complète", BasePrice: 12000, Active: true},
		{ID: 2, Name: "Filtre à air", BasePrice: 4000, Active: true},
		{ID: 3, Name: "Diagnostic", BasePrice: 6000, Active: false},
	}}
}

func TestExecute_WorkshopSumsActiveServices(t *testing.T) {
	uc := NewUseCase(testCatalog(), &fakeSettingsRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1, 2},
		Type:       domain.TypeWorkshop,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(16000), resp.Total)
	assert.Equal(t, int64(16000), resp.Base)
	assert.Equal(t, int64(0), resp.Surcharge)
}

func TestExecute_HomeVisitAddsDefaultSurcharge(t *testing.T) {
	// Ключа в конфигурации нет, применяется дефолтная наценка
	uc := NewUseCase(testCatalog(), &fakeSettingsRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1, 2},
		Type:       domain.TypeHomeVisit,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(19000), resp.Total)
	assert.Equal(t, int64(16000), resp.Base)
	assert.Equal(t, int64(3000), resp.Surcharge)
}

func TestExecute_HomeVisitUsesConfiguredSurcharge(t *testing.T) {
	settings := &fakeSettingsRepo{values: map[string]string{
		domain.ConfigKeyHomeVisitSurcharge: "5000",
	}}
	uc := NewUseCase(testCatalog(), settings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{2},
		Type:       domain.TypeHomeVisit,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9000), resp.Total)
	assert.Equal(t, int64(5000), resp.Surcharge)
}

func TestExecute_InactiveAndUnknownServicesDropped(t *testing.T) {
	uc := NewUseCase(testCatalog(), &fakeSettingsRepo{}, nopLogger{})

	// id=3 деактивирована, id=99 не существует: обе выпадают из суммы
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1, 3, 99},
		Type:       domain.TypeWorkshop,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12000), resp.Base)
}

func TestExecute_EmptySelectionIsZero(t *testing.T) {
	uc := NewUseCase(testCatalog(), &fakeSettingsRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: nil,
		Type:       domain.TypeHomeVisit,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Base)
	assert.Equal(t, int64(3000), resp.Surcharge)
	assert.Equal(t, int64(3000), resp.Total)
}

func TestExecute_InvalidType(t *testing.T) {
	uc := NewUseCase(testCatalog(), &fakeSettingsRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1},
		Type:       domain.BookingType("drive_through"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MalformedSurchargeValue(t *testing.T) {
	settings := &fakeSettingsRepo{values: map[string]string{
		domain.ConfigKeyHomeVisitSurcharge: "not-a-number",
	}}
	uc := NewUseCase(testCatalog(), settings, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1},
		Type:       domain.TypeHomeVisit,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CatalogError(t *testing.T) {
	catalog := &fakeCatalogRepo{err: errors.New("connection refused")}
	uc := NewUseCase(catalog, &fakeSettingsRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1},
		Type:       domain.TypeWorkshop,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
