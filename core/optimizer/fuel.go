package optimizer

import "github.com/eagowl/fleet-optimizer/core/model"

// FuelEvaluator computes fuel feasibility for a planned route distance.
type FuelEvaluator struct {
	LitersPerKm   float64
	RefuelDeficit float64
}

// NewFuelEvaluator creates an evaluator from the configuration.
func NewFuelEvaluator(cfg Config) FuelEvaluator {
	cfg.SetDefaults()
	return FuelEvaluator{LitersPerKm: cfg.LitersPerKm, RefuelDeficit: cfg.RefuelDeficitLiters}
}

// Evaluate reports the fuel needed for the distance against the vehicle's
// current level. The deficit is clamped at zero when the tank suffices.
func (f FuelEvaluator) Evaluate(v model.Vehicle, routeKm float64) model.FuelReport {
	needed := routeKm * f.LitersPerKm
	deficit := needed - v.FuelLevel
	if deficit < 0 {
		deficit = 0
	}
	return model.FuelReport{
		VehicleID:            v.ID,
		RouteDistance:        routeKm,
		EstimatedConsumption: needed,
		CurrentFuelLevel:     v.FuelLevel,
		MaxFuel:              v.MaxFuel,
		FuelDeficit:          deficit,
		FuelPercentage:       v.FuelPercent(),
		NeedsRefuel:          deficit > f.RefuelDeficit,
	}
}
