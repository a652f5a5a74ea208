package compute_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/LV-BookingService/internal/api/handlers"
	computeQuote "github.com/m04kA/LV-BookingService/internal/usecase/compute_quote"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета"
)

type Handler struct {
	useCase ComputeQuoteUseCase
	logger  Logger
}

func NewHandler(useCase ComputeQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputeQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: total=%d, base=%d, surcharge=%d",
		result.Total, result.Base, result.Surcharge)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
