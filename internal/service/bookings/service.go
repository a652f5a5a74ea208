package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LV-BookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования, сначала недавно созданные
// Опционально фильтрует по пользователю (для клиентского кабинета)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, user=%v", req.UserID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{UserID: req.UserID})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus устанавливает статус и назначение техника одним вызовом
// Операция для персонала: статус перезаписывается безусловно, любой из
// четырех статусов допустим из любого текущего (граф переходов не
// ограничивается). techID = nil снимает техника с заказа
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: booking id=%d, status=%s, technician=%v",
		bookingID, req.Status, req.TechnicianID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if err := s.bookingRepo.SetStatusAndTechnician(ctx, bookingID, newStatus, req.TechnicianID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Cancel отменяет бронирование по запросу клиента
// Срабатывает только для собственного бронирования клиента: чужой или
// несуществующий id дает ноль затронутых строк и это no-op, не ошибка
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	rows, err := s.bookingRepo.CancelByOwner(ctx, bookingID, req.UserID)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if rows == 0 {
		s.logger.Warn("Cancel: no-op, booking id=%d does not belong to user=%d", bookingID, req.UserID)
		return nil
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Rate записывает оценку клиента за выполненную работу
// Повторная оценка перезаписывает предыдущую; статус бронирования не
// проверяется. Чужое бронирование дает no-op по той же схеме, что и Cancel
func (s *Service) Rate(ctx context.Context, bookingID int64, req *models.RateBookingRequest) error {
	s.logger.Info("Rate: rating booking id=%d by user=%d, rating=%d", bookingID, req.UserID, req.Rating)

	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("Rate: invalid rating=%d for booking id=%d", req.Rating, bookingID)
		return ErrInvalidRating
	}

	rows, err := s.bookingRepo.RateByOwner(ctx, bookingID, req.UserID, req.Rating)
	if err != nil {
		s.logger.Error("Rate: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Rate - repository error: %v", ErrInternal, err)
	}

	if rows == 0 {
		s.logger.Warn("Rate: no-op, booking id=%d does not belong to user=%d", bookingID, req.UserID)
		return nil
	}

	s.logger.Info("Rate: successfully rated booking id=%d with %d", bookingID, req.Rating)
	return nil
}
