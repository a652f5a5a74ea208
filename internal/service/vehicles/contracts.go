package vehicles

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, id int64, v *domain.Vehicle) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
