package get_stats

import (
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /stats - Failed to load stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Stats retrieved: total_bookings=%d, total_revenue=%d",
		result.TotalBookings, result.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
