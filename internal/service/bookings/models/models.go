package models

import (
	"errors"
	"time"

	"github.com/m04kA/LV-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	UserID *int64 `json:"userId,omitempty"` // nil = бронирования всех пользователей
}

// UpdateStatusRequest запрос на смену статуса и назначение техника
type UpdateStatusRequest struct {
	Status       string `json:"status"`
	TechnicianID *int64 `json:"technicianId,omitempty"` // nil снимает назначение
}

// CancelBookingRequest запрос клиента на отмену своего бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// RateBookingRequest запрос клиента на оценку своего бронирования
type RateBookingRequest struct {
	UserID int64 `json:"userId"`
	Rating int   `json:"rating"`
}

// Response модели

// BookingResponse ответ с данными бронирования
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
	Rating       *int      `json:"rating,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		VehicleID:    b.VehicleID,
		ServiceIDs:   b.ServiceIDs,
		TotalPrice:   b.TotalPrice,
		Type:         string(b.Type),
		Address:      b.Address,
		Latitude:     b.Latitude,
		Longitude:    b.Longitude,
		ScheduledAt:  b.ScheduledAt,
		Status:       string(b.Status),
		TechnicianID: b.TechnicianID,
		PaymentMode:  string(b.PaymentMode),
		Rating:       b.Rating,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
