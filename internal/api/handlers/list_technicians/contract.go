package list_technicians

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/technicians"
)

type TechnicianService interface {
	List(ctx context.Context, activeOnly bool) (*technicians.TechnicianListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
