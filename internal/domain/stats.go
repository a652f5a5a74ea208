package domain

// StatsTotals holds aggregate figures over all bookings
type StatsTotals struct {
	Bookings      int64
	Revenue       int64
	AverageRating *float64 // nil when no booking has been rated yet
}

// MonthlyStat is one month of booking activity
type MonthlyStat struct {
	Month    string // "2026-08"
	Bookings int64
	Revenue  int64
}
