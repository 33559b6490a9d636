package metrics

import (
	"time"

	"github.com/eagowl/fleet-optimizer/core/model"
)

// RunEvent captures the outcome of one optimization run for observability.
type RunEvent struct {
	RunID           string
	TotalDeliveries int
	TotalVehicles   int
	Assigned        int
	Unassigned      int
	VehiclesUsed    int
	EfficiencyScore float64
	Time            time.Time
}

// Sink records optimization runs. Additional event types are recorded when
// the sink also implements the optional recorder interfaces below.
type Sink interface {
	RecordRun(ev RunEvent) error
}

// AssignmentEvent captures one vehicle route within a run.
type AssignmentEvent struct {
	RunID      string
	VehicleID  string
	Stops      int
	DistanceKm float64
	TimeMin    float64
	Time       time.Time
}

// AssignmentRecorder records per-vehicle route assignments.
type AssignmentRecorder interface {
	RecordAssignment(ev AssignmentEvent) error
}

// FuelCheckEvent captures a fuel feasibility evaluation.
type FuelCheckEvent struct {
	Report model.FuelReport
	Time   time.Time
}

// FuelCheckRecorder records fuel feasibility evaluations.
type FuelCheckRecorder interface {
	RecordFuelCheck(ev FuelCheckEvent) error
}

// RecommendationEvent captures one issued recommendation.
type RecommendationEvent struct {
	Type     string
	Priority string
	Time     time.Time
}

// RecommendationRecorder records issued recommendations.
type RecommendationRecorder interface {
	RecordRecommendation(ev RecommendationEvent) error
}

// VehicleStateEvent captures one telemetry snapshot of a vehicle.
type VehicleStateEvent struct {
	Vehicle model.Vehicle
	Time    time.Time
}

// VehicleStateRecorder records vehicle telemetry snapshots.
type VehicleStateRecorder interface {
	RecordVehicleState(ev VehicleStateEvent) error
}

// FleetSizeRecorder records the number of vehicles currently tracked.
type FleetSizeRecorder interface {
	RecordFleetSize(size int) error
}

// ActiveRoutesRecorder records the number of routes produced by the most
// recent optimization.
type ActiveRoutesRecorder interface {
	RecordActiveRoutes(count int) error
}

// NopSink implements Sink and every optional recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error                       { return nil }
func (NopSink) RecordAssignment(AssignmentEvent) error         { return nil }
func (NopSink) RecordFuelCheck(FuelCheckEvent) error           { return nil }
func (NopSink) RecordRecommendation(RecommendationEvent) error { return nil }
func (NopSink) RecordVehicleState(VehicleStateEvent) error     { return nil }
func (NopSink) RecordFleetSize(int) error                      { return nil }
func (NopSink) RecordActiveRoutes(int) error                   { return nil }
