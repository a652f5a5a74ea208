package compute_quote

import (
	"github.com/m04kA/LV-BookingService/internal/domain"
	computeQuote "github.com/m04kA/LV-BookingService/internal/usecase/compute_quote"
)

// ComputeQuoteRequest HTTP request model
type ComputeQuoteRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
	Type       string  `json:"type"` // "workshop" | "home_visit"
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Total     int64 `json:"total"`
	Base      int64 `json:"base"`
	Surcharge int64 `json:"surcharge"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ComputeQuoteRequest) ToUseCaseRequest() *computeQuote.Request {
	return &computeQuote.Request{
		ServiceIDs: r.ServiceIDs,
		Type:       domain.BookingType(r.Type),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *computeQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Total:     resp.Total,
		Base:      resp.Base,
		Surcharge: resp.Surcharge,
	}
}
