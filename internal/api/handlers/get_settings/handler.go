package get_settings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/domain"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	HomeVisitSurcharge int64  `json:"homeVisitSurcharge"`
	Brand              string `json:"brand"`
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawSurcharge, err := h.service.GetValue(r.Context(),
		domain.ConfigKeyHomeVisitSurcharge,
		strconv.FormatInt(domain.DefaultHomeVisitSurcharge, 10))
	if err != nil {
		h.logger.Error("GET /settings - Failed to load surcharge: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	surcharge, err := strconv.ParseInt(rawSurcharge, 10, 64)
	if err != nil {
		h.logger.Error("GET /settings - Malformed surcharge value %q: %v", rawSurcharge, err)
		handlers.RespondInternalError(w)
		return
	}

	brand, err := h.service.GetValue(r.Context(), domain.ConfigKeyBrand, domain.DefaultBrand)
	if err != nil {
		h.logger.Error("GET /settings - Failed to load brand: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved (surcharge=%d, brand=%q)", surcharge, brand)
	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		HomeVisitSurcharge: surcharge,
		Brand:              brand,
	})
}
