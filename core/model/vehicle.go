package model

// Defaults applied to vehicle snapshots with missing fields.
const (
	DefaultDriverName = "Unknown"
	DefaultCapacity   = 1000.0
	DefaultFuelLevel  = 50.0
	DefaultMaxFuel    = 60.0
)

// Vehicle is a read-only snapshot of a fleet vehicle at optimization time.
type Vehicle struct {
	ID         string `json:"id"`
	DriverName string `json:"driver_name"`
	// Capacity is accepted as input but not used during assignment;
	// deliveries carry no weight or volume to pack against.
	Capacity   float64 `json:"capacity"`
	CurrentLat float64 `json:"current_lat"`
	CurrentLon float64 `json:"current_lon"`
	FuelLevel  float64 `json:"fuel_level"`
	MaxFuel    float64 `json:"max_fuel"`
}

// FuelRatio returns the fuel level as a fraction of tank size. Vehicles with
// an unknown or zero tank size report 0 so they sort last during assignment.
func (v Vehicle) FuelRatio() float64 {
	if v.MaxFuel <= 0 {
		return 0
	}
	return v.FuelLevel / v.MaxFuel
}

// FuelPercent returns the fuel level as a percentage of tank size.
func (v Vehicle) FuelPercent() float64 {
	return v.FuelRatio() * 100
}
