package catalog

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	Create(ctx context.Context, item *domain.ServiceItem) (*domain.ServiceItem, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceItem, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.ServiceItem, error)
	Update(ctx context.Context, id int64, item *domain.ServiceItem) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
