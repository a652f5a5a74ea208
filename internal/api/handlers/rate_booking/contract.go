package rate_booking

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Rate(ctx context.Context, bookingID int64, req *models.RateBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
