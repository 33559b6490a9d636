package model

// FuelReport is the fuel feasibility evaluation of a route for one vehicle.
type FuelReport struct {
	VehicleID            string  `json:"vehicle_id"`
	RouteDistance        float64 `json:"route_distance"`
	EstimatedConsumption float64 `json:"estimated_fuel_consumption"`
	CurrentFuelLevel     float64 `json:"current_fuel_level"`
	MaxFuel              float64 `json:"max_fuel"`
	// FuelDeficit is the liters missing to complete the route, zero when
	// the current level suffices.
	FuelDeficit    float64 `json:"fuel_deficit"`
	FuelPercentage float64 `json:"fuel_percentage"`
	NeedsRefuel    bool    `json:"needs_refuel"`
}
