package get_stats

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/stats"
)

type StatsService interface {
	Get(ctx context.Context) (*stats.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
