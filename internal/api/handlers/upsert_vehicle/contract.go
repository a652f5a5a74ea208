package upsert_vehicle

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/vehicles"
)

type VehicleService interface {
	Upsert(ctx context.Context, userID int64, req *vehicles.UpsertVehicleRequest) (*vehicles.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
