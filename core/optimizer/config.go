package optimizer

import "fmt"

// Operational defaults applied by SetDefaults.
const (
	DefaultAvgSpeedKmh        = 40.0
	DefaultMaxStopsPerVehicle = 5
	DefaultSearchRadiusKm     = 50.0
	DefaultLitersPerKm        = 0.08
	DefaultRefuelDeficitL     = 5.0
)

// Config tunes the route assignment engine.
type Config struct {
	// AvgSpeedKmh is the assumed urban travel speed for time estimates.
	AvgSpeedKmh float64 `json:"avg_speed_kmh"`
	// MaxStopsPerVehicle caps the stops collected for one vehicle per run.
	MaxStopsPerVehicle int `json:"max_stops_per_vehicle"`
	// SearchRadiusKm bounds the vehicle-to-stop distance for a candidate.
	SearchRadiusKm float64 `json:"search_radius_km"`
	// LitersPerKm is the assumed fuel burn rate of a delivery vehicle.
	LitersPerKm float64 `json:"liters_per_km"`
	// RefuelDeficitLiters is the fuel shortfall above which a route
	// requires refueling before departure.
	RefuelDeficitLiters float64 `json:"refuel_deficit_liters"`
}

// SetDefaults applies the operational defaults to unset fields.
func (c *Config) SetDefaults() {
	if c.AvgSpeedKmh <= 0 {
		c.AvgSpeedKmh = DefaultAvgSpeedKmh
	}
	if c.MaxStopsPerVehicle <= 0 {
		c.MaxStopsPerVehicle = DefaultMaxStopsPerVehicle
	}
	if c.SearchRadiusKm <= 0 {
		c.SearchRadiusKm = DefaultSearchRadiusKm
	}
	if c.LitersPerKm <= 0 {
		c.LitersPerKm = DefaultLitersPerKm
	}
	if c.RefuelDeficitLiters <= 0 {
		c.RefuelDeficitLiters = DefaultRefuelDeficitL
	}
}

// Validate checks that the configured values are usable.
func (c Config) Validate() error {
	if c.AvgSpeedKmh < 0 {
		return fmt.Errorf("avg_speed_kmh must not be negative")
	}
	if c.SearchRadiusKm < 0 {
		return fmt.Errorf("search_radius_km must not be negative")
	}
	if c.LitersPerKm < 0 {
		return fmt.Errorf("liters_per_km must not be negative")
	}
	return nil
}
