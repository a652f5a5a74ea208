package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/service/bookings/models"
)

const msgInvalidUserID = "некорректный ID пользователя"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Без параметров возвращает все бронирования (для панели управления),
// с ?userId=N только историю одного клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}

	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			h.logger.Warn("GET /bookings - Invalid userId filter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = &userID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Retrieved %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
