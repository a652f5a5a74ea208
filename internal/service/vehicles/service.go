package vehicles

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
	vehicleRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/vehicle"
)

// UpsertVehicleRequest запрос на создание или обновление автомобиля
// ID == nil означает создание нового автомобиля
type UpsertVehicleRequest struct {
	ID      *int64 `json:"id,omitempty"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Plate   string `json:"plate"`
	Mileage *int64 `json:"mileage,omitempty"`
}

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Plate   string `json:"plate"`
	Mileage *int64 `json:"mileage,omitempty"`
}

// VehicleListResponse ответ со списком автомобилей пользователя
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// Service сервис гаража клиента
type Service struct {
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// ListByUser получает автомобили пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*VehicleListResponse, error) {
	list, err := s.vehicleRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	resp := &VehicleListResponse{Vehicles: make([]VehicleResponse, 0, len(list))}
	for _, v := range list {
		resp.Vehicles = append(resp.Vehicles, *fromDomainVehicle(v))
	}

	return resp, nil
}

// Upsert создает автомобиль или обновляет существующий
// Обновление ограничено автомобилями владельца: чужой id неотличим от несуществующего
func (s *Service) Upsert(ctx context.Context, userID int64, req *UpsertVehicleRequest) (*VehicleResponse, error) {
	if req.Make == "" || req.Model == "" || req.Plate == "" {
		return nil, fmt.Errorf("%w: make, model and plate are required", ErrInvalidInput)
	}
	if req.Mileage != nil && *req.Mileage < 0 {
		return nil, fmt.Errorf("%w: mileage must be non-negative", ErrInvalidInput)
	}

	v := &domain.Vehicle{
		UserID:  userID,
		Make:    req.Make,
		Model:   req.Model,
		Plate:   req.Plate,
		Mileage: req.Mileage,
	}

	if req.ID == nil {
		created, err := s.vehicleRepo.Create(ctx, v)
		if err != nil {
			s.logger.Error("Upsert: failed to create vehicle for user=%d: %v", userID, err)
			return nil, fmt.Errorf("%w: Upsert - create vehicle: %v", ErrInternal, err)
		}
		s.logger.Info("Upsert: created vehicle id=%d for user=%d", created.ID, userID)
		return fromDomainVehicle(created), nil
	}

	if err := s.vehicleRepo.Update(ctx, *req.ID, v); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Upsert: vehicle id=%d not found for user=%d", *req.ID, userID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Upsert: failed to update vehicle id=%d: %v", *req.ID, err)
		return nil, fmt.Errorf("%w: Upsert - update vehicle: %v", ErrInternal, err)
	}

	v.ID = *req.ID
	s.logger.Info("Upsert: updated vehicle id=%d for user=%d", v.ID, userID)
	return fromDomainVehicle(v), nil
}

func fromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:      v.ID,
		UserID:  v.UserID,
		Make:    v.Make,
		Model:   v.Model,
		Plate:   v.Plate,
		Mileage: v.Mileage,
	}
}
