package events

import (
	"time"

	"github.com/eagowl/fleet-optimizer/core/model"
)

// RunCompleted is published after an optimization run has been recorded in
// the ledger.
type RunCompleted struct {
	Run        model.OptimizationRun `json:"run"`
	Vehicles   int                   `json:"total_vehicles_used"`
	Assigned   int                   `json:"total_deliveries_assigned"`
	Unassigned int                   `json:"unassigned_deliveries"`
}

// FuelChecked is published for each fuel feasibility evaluation.
type FuelChecked struct {
	Report model.FuelReport `json:"report"`
	Time   time.Time        `json:"time"`
}

// RecommendationsIssued is published when a recommendation list is produced.
type RecommendationsIssued struct {
	Count int       `json:"count"`
	Time  time.Time `json:"time"`
}

// VehicleSeen is published for each telemetry update received for a vehicle.
// FleetSize is the number of tracked vehicles after the update.
type VehicleSeen struct {
	Vehicle   model.Vehicle `json:"vehicle"`
	FleetSize int           `json:"fleet_size"`
	Time      time.Time     `json:"time"`
}
