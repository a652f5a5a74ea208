package list_services

import (
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// По умолчанию возвращается только активный каталог; ?all=true добавляет
// деактивированные услуги (для панели управления)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Retrieved %d services (activeOnly=%t)", len(result.Services), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
