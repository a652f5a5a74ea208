package compute_quote

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/LV-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/settings"
)

// UseCase use case расчета стоимости по текущему каталогу и конфигурации
//
// Расчет детерминирован относительно снапшота каталога и конфигурации:
// два вызова подряд без изменений каталога дают одинаковый результат.
// Результат нигде не сохраняется, бронирование фиксирует только
// подтвержденный клиентом итог
type UseCase struct {
	catalogRepo  CatalogRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, settingsRepo SettingsRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute считает (total, base, surcharge) для выбранных услуг
//
// Услуги резолвятся только по активному каталогу: id деактивированной или
// несуществующей услуги молча выпадает из суммы (вклад 0), это не ошибка.
// Пустой выбор дает base = 0 и тоже не ошибка: запрет пустого бронирования
// действует только при создании, не при расчете
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !domain.IsValidBookingType(req.Type) {
		uc.logger.Warn("ComputeQuote: invalid booking type=%q", req.Type)
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	active, err := uc.catalogRepo.List(ctx, true)
	if err != nil {
		uc.logger.Error("ComputeQuote: failed to list active services: %v", err)
		return nil, fmt.Errorf("%w: failed to list active services: %v", ErrInternal, err)
	}

	selected := make(map[int64]bool, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		selected[id] = true
	}

	var base int64
	for _, item := range active {
		if selected[item.ID] {
			base += item.BasePrice
		}
	}

	var surcharge int64
	if req.Type == domain.TypeHomeVisit {
		surcharge, err = uc.homeVisitSurcharge(ctx)
		if err != nil {
			return nil, err
		}
	}

	total := base + surcharge

	uc.logger.Info("ComputeQuote: type=%s, services=%d, total=%d (base=%d, surcharge=%d)",
		req.Type, len(req.ServiceIDs), total, base, surcharge)

	return &Response{
		Total:     total,
		Base:      base,
		Surcharge: surcharge,
	}, nil
}

// homeVisitSurcharge читает наценку за выезд из конфигурации
// Отсутствующий ключ не ошибка: используется дефолт
func (uc *UseCase) homeVisitSurcharge(ctx context.Context) (int64, error) {
	raw, err := uc.settingsRepo.Get(ctx, domain.ConfigKeyHomeVisitSurcharge)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrKeyNotFound) {
			uc.logger.Info("ComputeQuote: surcharge key absent, using default %d", domain.DefaultHomeVisitSurcharge)
			return domain.DefaultHomeVisitSurcharge, nil
		}
		uc.logger.Error("ComputeQuote: failed to get surcharge config: %v", err)
		return 0, fmt.Errorf("%w: failed to get surcharge config: %v", ErrInternal, err)
	}

	surcharge, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || surcharge < 0 {
		uc.logger.Error("ComputeQuote: malformed surcharge config value %q", raw)
		return 0, fmt.Errorf("%w: malformed surcharge config value %q", ErrInternal, raw)
	}

	return surcharge, nil
}
