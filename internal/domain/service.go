package domain

// ServiceItem is a catalog entry for one billable maintenance action
type ServiceItem struct {
	ID              int64
	Name            string
	BasePrice       int64 // whole currency units (DA)
	DurationMinutes int
	Category        string
	Active          bool
}

// ConfigEntry is one row of the key-value business configuration store
type ConfigEntry struct {
	Key   string
	Value string
}
