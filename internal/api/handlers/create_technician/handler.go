package create_technician

import (
	"errors"
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/service/technicians"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные техника"
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

// Handle POST /api/v1/technicians
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req technicians.CreateTechnicianRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /technicians - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, technicians.ErrInvalidInput):
			h.logger.Warn("POST /technicians - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /technicians - Failed to create technician: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /technicians - Technician created successfully: technician_id=%d, name=%q",
		result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
