package technicians

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// TechnicianRepository интерфейс репозитория техников
type TechnicianRepository interface {
	Create(ctx context.Context, tech *domain.Technician) (*domain.Technician, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Technician, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
