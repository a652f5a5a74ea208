package domain

import "time"

// User represents a registered client account
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	CreatedAt    time.Time
}

// Vehicle represents a client vehicle
type Vehicle struct {
	ID      int64
	UserID  int64
	Make    string
	Model   string
	Plate   string
	Mileage *int64
}

// Technician represents a staff member who can be assigned to bookings.
// Removing a technician never removes bookings; their reference is nulled.
type Technician struct {
	ID     int64
	Name   string
	Phone  *string
	Active bool
}
