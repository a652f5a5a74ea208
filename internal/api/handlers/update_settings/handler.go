package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/domain"
	"github.com/m04kA/LV-BookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSurcharge   = "наценка за выезд не может быть отрицательной"
	msgNothingToUpdate    = "не указано ни одного параметра для изменения"
)

// UpdateSettingsRequest HTTP request model
// Отсутствующее поле оставляет текущее значение без изменений
type UpdateSettingsRequest struct {
	HomeVisitSurcharge *int64  `json:"homeVisitSurcharge,omitempty"`
	Brand              *string `json:"brand,omitempty"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.HomeVisitSurcharge == nil && req.Brand == nil {
		h.logger.Warn("PUT /settings - Empty update request")
		handlers.RespondBadRequest(w, msgNothingToUpdate)
		return
	}

	if req.HomeVisitSurcharge != nil {
		if err := h.service.SetHomeVisitSurcharge(r.Context(), *req.HomeVisitSurcharge); err != nil {
			switch {
			case errors.Is(err, settings.ErrInvalidInput):
				h.logger.Warn("PUT /settings - Invalid surcharge: %d", *req.HomeVisitSurcharge)
				handlers.RespondBadRequest(w, msgInvalidSurcharge)

			default:
				h.logger.Error("PUT /settings - Failed to update surcharge: %v", err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	if req.Brand != nil {
		if err := h.service.SetValue(r.Context(), domain.ConfigKeyBrand, *req.Brand); err != nil {
			h.logger.Error("PUT /settings - Failed to update brand: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PUT /settings - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
