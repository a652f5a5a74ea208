package compute_quote

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.ServiceItem, error)
}

// SettingsRepository интерфейс репозитория key-value конфигурации
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
