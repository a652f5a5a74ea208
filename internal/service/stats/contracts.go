package stats

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// BookingStatsRepository интерфейс репозитория для агрегатов по бронированиям
type BookingStatsRepository interface {
	GetTotals(ctx context.Context) (*domain.StatsTotals, error)
	GetMonthlyStats(ctx context.Context) ([]*domain.MonthlyStat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
