package technicians

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LV-BookingService/internal/domain"
	techRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/technician"
)

type fakeTechnicianRepo struct {
	techs  map[int64]*domain.Technician
	nextID int64
	err    error
}

func newFakeTechnicianRepo() *fakeTechnicianRepo {
	return &fakeTechnicianRepo{techs: make(map[int64]*domain.Technician), nextID: 1}
}

func (f *fakeTechnicianRepo) Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error) {
	if f.err != nil {
		return nil, f.err
	}
	tech.ID = f.nextID
	f.nextID++
	f.techs[tech.ID] = tech
	return tech, nil
}

func (f *fakeTechnicianRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Technician, error) {
	if f.err != nil {
		return nil, f.err
	}
	list := make([]*domain.Technician, 0, len(f.techs))
	for id := int64(1); id < f.nextID; id++ {
		tech, ok := f.techs[id]
		if !ok {
			continue
		}
		if activeOnly && !tech.Active {
			continue
		}
		list = append(list, tech)
	}
	return list, nil
}

func (f *fakeTechnicianRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.techs[id]; !ok {
		return techRepo.ErrTechnicianNotFound
	}
	delete(f.techs, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreateAndList(t *testing.T) {
	svc := NewService(newFakeTechnicianRepo(), nopLogger{})

	created, err := svc.Create(context.Background(), &CreateTechnicianRequest{Name: "Karim"})
	require.NoError(t, err)
	assert.True(t, created.Active)

	resp, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Technicians, 1)
	assert.Equal(t, "Karim", resp.Technicians[0].Name)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := NewService(newFakeTechnicianRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &CreateTechnicianRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newFakeTechnicianRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &CreateTechnicianRequest{Name: "Karim"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.techs)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeTechnicianRepo(), nopLogger{})

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTechnicianNotFound)
}
