package bookings

import (
	"context"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SetStatusAndTechnician(ctx context.Context, id int64, status domain.BookingStatus, techID *int64) error
	CancelByOwner(ctx context.Context, id, ownerID int64) (int64, error)
	RateByOwner(ctx context.Context, id, ownerID int64, rating int) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
