package technicians

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
	techRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/technician"
)

// CreateTechnicianRequest запрос на добавление техника
type CreateTechnicianRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// TechnicianResponse ответ с данными техника
type TechnicianResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Phone  *string `json:"phone,omitempty"`
	Active bool    `json:"active"`
}

// TechnicianListResponse ответ со списком техников
type TechnicianListResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
}

// Service сервис управления техниками
type Service struct {
	techRepo TechnicianRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса техников
func NewService(techRepo TechnicianRepository, logger Logger) *Service {
	return &Service{
		techRepo: techRepo,
		logger:   logger,
	}
}

// List получает техников, activeOnly = true отфильтровывает неактивных
func (s *Service) List(ctx context.Context, activeOnly bool) (*TechnicianListResponse, error) {
	techs, err := s.techRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &TechnicianListResponse{
		Technicians: make([]TechnicianResponse, 0, len(techs)),
	}
	for _, tech := range techs {
		resp.Technicians = append(resp.Technicians, TechnicianResponse{
			ID:     tech.ID,
			Name:   tech.Name,
			Phone:  tech.Phone,
			Active: tech.Active,
		})
	}

	return resp, nil
}

// Create добавляет нового техника (активного)
func (s *Service) Create(ctx context.Context, req *CreateTechnicianRequest) (*TechnicianResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.techRepo.Create(ctx, &domain.Technician{
		Name:   req.Name,
		Phone:  req.Phone,
		Active: true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created technician id=%d", created.ID)
	return &TechnicianResponse{
		ID:     created.ID,
		Name:   created.Name,
		Phone:  created.Phone,
		Active: created.Active,
	}, nil
}

// Delete удаляет техника
// Бронирования с этим техником остаются, их ссылка обнуляется
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.techRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, techRepo.ErrTechnicianNotFound) {
			s.logger.Warn("Delete: technician id=%d not found", id)
			return ErrTechnicianNotFound
		}
		s.logger.Error("Delete: repository error for technician id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted technician id=%d", id)
	return nil
}
