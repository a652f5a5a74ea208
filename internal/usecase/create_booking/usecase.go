package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает бронирование и возвращает его id
//
// Выбранные услуги фиксируются снапшотом: список id сериализуется внутрь
// записи и дальнейшие изменения каталога на него не влияют. Итоговая цена
// берется из запроса как есть. Начальный статус всегда scheduled, техник и
// оценка пустые
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, services=%d, type=%s, total=%d",
		req.UserID, req.VehicleID, len(req.ServiceIDs), req.Type, req.TotalPrice)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		UserID:      req.UserID,
		VehicleID:   req.VehicleID,
		ServiceIDs:  domain.ServiceIDList(req.ServiceIDs),
		TotalPrice:  req.TotalPrice,
		Type:        req.Type,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.StatusScheduled,
		PaymentMode: req.PaymentMode,
		Notes:       req.Notes,
	}

	var result *domain.Booking

	// Каждая операция получает собственную короткую транзакцию
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		UserID:       result.UserID,
		VehicleID:    result.VehicleID,
		ServiceIDs:   result.ServiceIDs,
		TotalPrice:   result.TotalPrice,
		Type:         string(result.Type),
		Address:      result.Address,
		Latitude:     result.Latitude,
		Longitude:    result.Longitude,
		ScheduledAt:  result.ScheduledAt,
		Status:       string(result.Status),
		TechnicianID: result.TechnicianID,
		PaymentMode:  string(result.PaymentMode),
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
	}, nil
}
