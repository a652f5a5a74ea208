package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LV-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/LV-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List получает услуги каталога в порядке добавления
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	items, err := s.catalogRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(items), nil
}

// Create создает новую услугу (активную)
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q, price=%d", req.Name, req.BasePrice)

	if err := validateServiceData(req.Name, req.BasePrice, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	item := &domain.ServiceItem{
		Name:            req.Name,
		BasePrice:       req.BasePrice,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
		Active:          true,
	}

	created, err := s.catalogRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// Update изменяет услугу; если передан флаг active, меняет и его
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d", id)

	if err := validateServiceData(req.Name, req.BasePrice, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed for service id=%d: %v", id, err)
		return nil, err
	}

	item := &domain.ServiceItem{
		Name:            req.Name,
		BasePrice:       req.BasePrice,
		DurationMinutes: req.DurationMinutes,
		Category:        req.Category,
	}

	if err := s.catalogRepo.Update(ctx, id, item); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Active != nil {
		if err := s.catalogRepo.SetActive(ctx, id, *req.Active); err != nil {
			s.logger.Error("Update: failed to set active for service id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - set active: %v", ErrInternal, err)
		}
	}

	updated, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload service: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// Labels строит подписи услуг по полному каталогу (включая деактивированные)
// Используется для отображения снапшотов бронирований: id, отсутствующий
// в каталоге, получает подпись "#<id>" вместо ошибки
func (s *Service) Labels(ctx context.Context, ids []int64) ([]string, error) {
	items, err := s.catalogRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("Labels: repository error: %v", err)
		return nil, fmt.Errorf("%w: Labels - repository error: %v", ErrInternal, err)
	}

	lookup := make(map[int64]string, len(items))
	for _, item := range items {
		lookup[item.ID] = fmt.Sprintf("%s (%d DA)", item.Name, item.BasePrice)
	}

	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		label, ok := lookup[id]
		if !ok {
			label = fmt.Sprintf("#%d", id)
		}
		labels = append(labels, label)
	}

	return labels, nil
}

// validateServiceData проверяет бизнес-ограничения услуги
func validateServiceData(name string, basePrice int64, durationMinutes int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if basePrice < 0 {
		return fmt.Errorf("%w: basePrice must be non-negative", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}
