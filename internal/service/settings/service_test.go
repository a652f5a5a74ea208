package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/settings"
)

type fakeSettingsRepo struct {
	values map[string]string
	err    error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: make(map[string]string)}
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

func (f *fakeSettingsRepo) Set(ctx context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetValue_MissingKeyReturnsDefault(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})

	value, err := svc.GetValue(context.Background(), domain.ConfigKeyBrand, domain.DefaultBrand)

	require.NoError(t, err)
	assert.Equal(t, "LuxeVidange", value)
}

func TestGetValue_ExistingKey(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.values["brand"] = "AutreMarque"
	svc := NewService(repo, nopLogger{})

	value, err := svc.GetValue(context.Background(), "brand", "fallback")

	require.NoError(t, err)
	assert.Equal(t, "AutreMarque", value)
}

func TestGetValue_RepositoryError(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := svc.GetValue(context.Background(), "brand", "fallback")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestSetValue_Overwrites(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.SetValue(context.Background(), "brand", "A"))
	require.NoError(t, svc.SetValue(context.Background(), "brand", "B"))

	assert.Equal(t, "B", repo.values["brand"])
}

func TestSetValue_EmptyKey(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})

	err := svc.SetValue(context.Background(), "", "x")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetHomeVisitSurcharge(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.SetHomeVisitSurcharge(context.Background(), 4500))

	assert.Equal(t, "4500", repo.values[domain.ConfigKeyHomeVisitSurcharge])
}

func TestSetHomeVisitSurcharge_Negative(t *testing.T) {
	svc := NewService(newFakeSettingsRepo(), nopLogger{})

	err := svc.SetHomeVisitSurcharge(context.Background(), -1)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
