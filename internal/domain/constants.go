package domain

// Business configuration keys (config table)
const (
	ConfigKeyHomeVisitSurcharge = "home_visit_surcharge_da"
	ConfigKeyBrand              = "brand"
)

// Default configuration values, assumed when a key is absent
const (
	DefaultHomeVisitSurcharge = 3000
	DefaultBrand              = "LuxeVidange"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// ValidStatuses all statuses a booking may be placed in.
// Any status is reachable from any status; the engine does not enforce a
// transition graph beyond this value set.
var ValidStatuses = []BookingStatus{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ValidBookingTypes all supported booking types
var ValidBookingTypes = []BookingType{
	TypeWorkshop,
	TypeHomeVisit,
}

// ValidPaymentModes all supported payment modes
var ValidPaymentModes = []PaymentMode{
	PaymentOnSite,
}

// IsValidStatus reports whether s is one of the known statuses
func IsValidStatus(s BookingStatus) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidBookingType reports whether t is one of the known booking types
func IsValidBookingType(t BookingType) bool {
	for _, v := range ValidBookingTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsValidPaymentMode reports whether m is one of the known payment modes
func IsValidPaymentMode(m PaymentMode) bool {
	for _, v := range ValidPaymentModes {
		if m == v {
			return true
		}
	}
	return false
}

// IsValidRating reports whether r is inside the 1-5 rating scale
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
