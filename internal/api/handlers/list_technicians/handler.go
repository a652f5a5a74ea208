package list_technicians

import (
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
)

type Handler struct {
	service TechnicianService
	logger  Logger
}

func NewHandler(service TechnicianService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/technicians
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	result, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /technicians - Failed to list technicians: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /technicians - Retrieved %d technicians (activeOnly=%t)",
		len(result.Technicians), activeOnly)
	handlers.RespondJSON(w, http.StatusOK, result)
}
