package list_vehicles

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/vehicles"
)

type VehicleService interface {
	ListByUser(ctx context.Context, userID int64) (*vehicles.VehicleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
