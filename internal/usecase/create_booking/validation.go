package create_booking

import (
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Адрес и координаты для выезда намеренно не обязательны: их отсутствие
// допускается, решение о заполнении остается за клиентом
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return ErrEmptyServices
	}

	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must be non-negative", ErrInvalidInput)
	}

	if !domain.IsValidBookingType(req.Type) {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if !domain.IsValidPaymentMode(req.PaymentMode) {
		return fmt.Errorf("%w: unknown payment mode %q", ErrInvalidInput, req.PaymentMode)
	}

	return nil
}
