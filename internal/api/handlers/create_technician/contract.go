package create_technician

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/technicians"
)

type TechnicianService interface {
	Create(ctx context.Context, req *technicians.CreateTechnicianRequest) (*technicians.TechnicianResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
