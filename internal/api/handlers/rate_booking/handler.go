package rate_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	"github.com/m04kA/LV-BookingService/internal/api/middleware"
	"github.com/m04kA/LV-BookingService/internal/service/bookings"
	"github.com/m04kA/LV-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
)

// RateBookingRequest HTTP request model
type RateBookingRequest struct {
	Rating int `json:"rating"`
}

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

// Handle POST /api/v1/bookings/{bookingId}/rating
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/rating - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/rating - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/rating - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.RateBookingRequest{
		UserID: userID,
		Rating: req.Rating,
	}

	if err := h.service.Rate(r.Context(), bookingID, serviceReq); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidRating):
			h.logger.Warn("POST /bookings/{id}/rating - Invalid rating: booking_id=%d, rating=%d",
				bookingID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /bookings/{id}/rating - Failed to rate booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/rating - Rating processed: booking_id=%d, user_id=%d, rating=%d",
		bookingID, userID, req.Rating)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
