package model

// DeliveryStop is a single delivery point submitted for optimization.
// Instances are treated as immutable values: the engine never modifies a
// stop after it has been decoded.
type DeliveryStop struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Priority ranges from 1 (highest) to 5 (lowest).
	Priority        int    `json:"priority"`
	TimeWindowStart string `json:"time_window_start"`
	TimeWindowEnd   string `json:"time_window_end"`
	// EstimatedDuration is the on-site service time in minutes.
	EstimatedDuration int `json:"estimated_duration"`
}
