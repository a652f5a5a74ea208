package create_booking

import (
	"time"

	"github.com/m04kA/LV-BookingService/internal/domain"
	createBooking "github.com/m04kA/LV-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VehicleID   int64    `json:"vehicleId"`
	ServiceIDs  []int64  `json:"serviceIds"`
	TotalPrice  int64    `json:"totalPrice"`
	Type        string   `json:"type"` // "workshop" | "home_visit"
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ScheduledAt string   `json:"scheduledAt"` // RFC3339, "2026-09-01T10:00:00Z"
	PaymentMode string   `json:"paymentMode"`
	Notes       *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	VehicleID    int64     `json:"vehicleId"`
	ServiceIDs   []int64   `json:"serviceIds"`
	TotalPrice   int64     `json:"totalPrice"`
	Type         string    `json:"type"`
	Address      *string   `json:"address,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	TechnicianID *int64    `json:"technicianId,omitempty"`
	PaymentMode  string    `json:"paymentMode"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени записи)
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		VehicleID:   r.VehicleID,
		ServiceIDs:  r.ServiceIDs,
		TotalPrice:  r.TotalPrice,
		Type:        domain.BookingType(r.Type),
		Address:     r.Address,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		ScheduledAt: scheduledAt,
		PaymentMode: domain.PaymentMode(r.PaymentMode),
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		UserID:       resp.UserID,
		VehicleID:    resp.VehicleID,
		ServiceIDs:   resp.ServiceIDs,
		TotalPrice:   resp.TotalPrice,
		Type:         resp.Type,
		Address:      resp.Address,
		Latitude:     resp.Latitude,
		Longitude:    resp.Longitude,
		ScheduledAt:  resp.ScheduledAt,
		Status:       resp.Status,
		TechnicianID: resp.TechnicianID,
		PaymentMode:  resp.PaymentMode,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt,
	}
}
