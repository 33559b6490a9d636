package model

// Recommendation types emitted by the engine.
const (
	RecommendationFuelAlert   = "fuel_alert"
	RecommendationFuelWarning = "fuel_warning"
	RecommendationEfficiency  = "efficiency_improvement"
)

// Recommendation priorities.
const (
	RecommendationPriorityHigh   = "high"
	RecommendationPriorityMedium = "medium"
)

// Recommendation is an operational advisory derived from fleet fuel state or
// recent optimization efficiency. Vehicle-scoped fields are omitted on
// fleet-wide entries.
type Recommendation struct {
	Type        string   `json:"type"`
	VehicleID   string   `json:"vehicle_id,omitempty"`
	DriverName  string   `json:"driver_name,omitempty"`
	FuelPercent *float64 `json:"fuel_percentage,omitempty"`
	Priority    string   `json:"priority"`
	Message     string   `json:"message"`
	// Action is the suggested operator response.
	Action string `json:"recommendation"`
}
