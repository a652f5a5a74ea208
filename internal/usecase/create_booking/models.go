package create_booking

import (
	"time"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
//
// TotalPrice это итог, который клиент подтвердил по рассчитанному devis.
// Он записывается как есть, без пересчета: если цены каталога изменились
// между расчетом и подтверждением, клиенту выставляется подтвержденная сумма
type Request struct {
	UserID      int64
	VehicleID   int64
	ServiceIDs  []int64
	TotalPrice  int64
	Type        domain.BookingType
	Address     *string  // только для выезда, опционально
	Latitude    *float64 // опционально, обычно в паре с Longitude
	Longitude   *float64
	ScheduledAt time.Time
	PaymentMode domain.PaymentMode
	Notes       *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64
	UserID       int64
	VehicleID    int64
	ServiceIDs   []int64
	TotalPrice   int64
	Type         string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	ScheduledAt  time.Time
	Status       string
	TechnicianID *int64
	PaymentMode  string
	Notes        *string
	CreatedAt    time.Time
}
