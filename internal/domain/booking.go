package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingType represents where the service is performed
type BookingType string

const (
	TypeWorkshop  BookingType = "workshop"
	TypeHomeVisit BookingType = "home_visit"
)

// PaymentMode represents how the client pays for a booking
// Only on-site payment is supported; the value is recorded, not processed
type PaymentMode string

const (
	PaymentOnSite PaymentMode = "on_site"
)

// ServiceIDList is the immutable snapshot of service ids selected at booking
// time. It is persisted as a JSON integer array in a single column so that
// later catalog changes never rewrite historical bookings.
type ServiceIDList []int64

// Value serializes the list for storage
func (l ServiceIDList) Value() (driver.Value, error) {
	if l == nil {
		l = ServiceIDList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("service id list: marshal: %w", err)
	}
	return string(data), nil
}

// Scan validates and decodes the stored JSON array
func (l *ServiceIDList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = ServiceIDList{}
		return nil
	default:
		return fmt.Errorf("service id list: unsupported source type %T", src)
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("service id list: invalid payload %q: %w", data, err)
	}
	*l = ids
	return nil
}

// Booking represents a priced, persisted appointment
type Booking struct {
	ID         int64
	UserID     int64
	VehicleID  int64
	ServiceIDs ServiceIDList

	// TotalPrice is computed once at creation and never recalculated,
	// even if catalog prices or the surcharge change afterwards
	TotalPrice int64

	Type BookingType

	// Location fields are only meaningful for home visit bookings
	Address   *string
	Latitude  *float64
	Longitude *float64

	ScheduledAt  time.Time
	Status       BookingStatus
	TechnicianID *int64
	PaymentMode  PaymentMode
	Rating       *int
	Notes        *string

	CreatedAt time.Time
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsHomeVisit returns true for at-customer-location bookings
func (b *Booking) IsHomeVisit() bool {
	return b.Type == TypeHomeVisit
}

// BookingsFilter narrows booking listings; zero value lists everything
type BookingsFilter struct {
	UserID *int64 // nil = bookings of all users
}

// Quote is the computed price breakdown for a candidate selection.
// It is never persisted on its own; a booking stores only the confirmed total.
type Quote struct {
	Total     int64
	Base      int64
	Surcharge int64
}
