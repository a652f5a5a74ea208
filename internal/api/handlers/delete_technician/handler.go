package delete_technician

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/service/technicians"
)

const (
	msgInvalidTechnicianID = "некорректный ID техника"
	msgNotFound            = "техник не найден"
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

// Handle DELETE /api/v1/technicians/{technicianId}
// Бронирования удаленного техника сохраняются, назначение снимается на уровне БД
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	technicianID, err := strconv.ParseInt(vars["technicianId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /technicians/{id} - Invalid technician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTechnicianID)
		return
	}

	if err := h.service.Delete(r.Context(), technicianID); err != nil {
		switch {
		case errors.Is(err, technicians.ErrTechnicianNotFound):
			h.logger.Warn("DELETE /technicians/{id} - Technician not found: technician_id=%d", technicianID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /technicians/{id} - Failed to delete technician: technician_id=%d, error=%v",
				technicianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /technicians/{id} - Technician deleted successfully: technician_id=%d", technicianID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
