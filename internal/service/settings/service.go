package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/LV-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/settings"
)

// Service сервис бизнес-настроек (таблица config)
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetValue получает значение по ключу, отсутствующий ключ дает defaultValue
// Никогда не считает отсутствие ключа ошибкой
func (s *Service) GetValue(ctx context.Context, key, defaultValue string) (string, error) {
	value, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrKeyNotFound) {
			return defaultValue, nil
		}
		s.logger.Error("GetValue: repository error for key=%q: %v", key, err)
		return "", fmt.Errorf("%w: GetValue - repository error: %v", ErrInternal, err)
	}
	return value, nil
}

// SetValue вставляет или перезаписывает значение (идемпотентно)
func (s *Service) SetValue(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: key is required", ErrInvalidInput)
	}

	if err := s.settingsRepo.Set(ctx, key, value); err != nil {
		s.logger.Error("SetValue: repository error for key=%q: %v", key, err)
		return fmt.Errorf("%w: SetValue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetValue: key=%q updated", key)
	return nil
}

// SetHomeVisitSurcharge валидирует и записывает наценку за выезд
// Значение хранится строкой, но обязано парситься как неотрицательное число
func (s *Service) SetHomeVisitSurcharge(ctx context.Context, surcharge int64) error {
	if surcharge < 0 {
		return fmt.Errorf("%w: surcharge must be non-negative", ErrInvalidInput)
	}
	return s.SetValue(ctx, domain.ConfigKeyHomeVisitSurcharge, strconv.FormatInt(surcharge, 10))
}
