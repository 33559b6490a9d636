// Package optimizer implements the fleet route assignment engine. It
// partitions delivery stops across a heterogeneous fleet, sequences each
// vehicle's route with a priority-weighted nearest-neighbor heuristic, and
// derives fuel and efficiency advisories from the results.
package optimizer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/eagowl/fleet-optimizer/core/events"
	"github.com/eagowl/fleet-optimizer/core/fleetstate"
	"github.com/eagowl/fleet-optimizer/core/ledger"
	"github.com/eagowl/fleet-optimizer/core/logger"
	"github.com/eagowl/fleet-optimizer/core/metrics"
	"github.com/eagowl/fleet-optimizer/core/model"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// Engine owns one optimizer instance: assignment, fuel evaluation,
// recommendations, the run ledger and the fleet snapshot. It holds no
// process-wide state; callers construct and wire it explicitly.
type Engine struct {
	assigner    AssignmentEngine
	fuel        FuelEvaluator
	recommender RecommendationEngine
	ledger      ledger.Ledger
	fleet       fleetstate.Store
	metrics     metrics.Sink
	bus         eventbus.EventBus
	logger      logger.Logger
	active      atomic.Int64
}

// Outcome bundles everything produced by one optimization run.
type Outcome struct {
	RunID           string                 `json:"optimization_id"`
	Result          model.AssignmentResult `json:"result"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// NewEngine creates an Engine. The ledger, fleet store and logger are
// required; a nil sink disables metrics and a nil bus disables events.
func NewEngine(cfg Config, led ledger.Ledger, fleet fleetstate.Store, sink metrics.Sink, bus eventbus.EventBus, log logger.Logger) (*Engine, error) {
	if led == nil || fleet == nil || log == nil {
		return nil, fmt.Errorf("optimizer: nil parameter provided to NewEngine")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("optimizer config: %w", err)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Engine{
		assigner:    NewAssignmentEngine(cfg),
		fuel:        NewFuelEvaluator(cfg),
		recommender: NewRecommendationEngine(),
		ledger:      led,
		fleet:       fleet,
		metrics:     sink,
		bus:         bus,
		logger:      log,
	}, nil
}

// Optimize runs one full assignment over the submitted snapshot: partition
// and sequence the routes, record the run, refresh the fleet snapshot, then
// derive recommendations from the post-run state. The run is recorded only
// after assignment has fully completed, so an aborted run never appears in
// history. Empty delivery or vehicle lists are valid and produce empty or
// fully-unassigned results.
func (e *Engine) Optimize(deliveries []model.DeliveryStop, vehicles []model.Vehicle) Outcome {
	result := e.assigner.Assign(deliveries, vehicles)

	run := model.OptimizationRun{
		ID:              uuid.NewString(),
		Timestamp:       result.Timestamp,
		TotalDeliveries: len(deliveries),
		TotalVehicles:   len(vehicles),
		AssignmentsMade: result.TotalAssigned,
		EfficiencyScore: float64(result.TotalAssigned) / float64(max(1, len(deliveries))),
	}
	e.ledger.Record(run)
	e.fleet.ReplaceAll(vehicles)
	e.active.Store(int64(result.TotalVehiclesUsed))

	e.recordRunMetrics(run, result)
	if e.bus != nil {
		e.bus.Publish(events.RunCompleted{
			Run:        run,
			Vehicles:   result.TotalVehiclesUsed,
			Assigned:   result.TotalAssigned,
			Unassigned: len(result.UnassignedDeliveries),
		})
	}
	e.logger.Infof("optimized %d deliveries across %d vehicles: %d assigned", len(deliveries), len(vehicles), result.TotalAssigned)

	return Outcome{
		RunID:           run.ID,
		Result:          result,
		Recommendations: e.recommendations(vehicles),
	}
}

// FuelCheck evaluates fuel feasibility for one vehicle and route distance.
func (e *Engine) FuelCheck(v model.Vehicle, routeKm float64) model.FuelReport {
	report := e.fuel.Evaluate(v, routeKm)
	if fr, ok := e.metrics.(metrics.FuelCheckRecorder); ok {
		if err := fr.RecordFuelCheck(metrics.FuelCheckEvent{Report: report, Time: time.Now()}); err != nil {
			e.logger.Errorf("fuel metrics error: %v", err)
		}
	}
	if e.bus != nil {
		e.bus.Publish(events.FuelChecked{Report: report, Time: time.Now()})
	}
	return report
}

// Recommendations evaluates the currently tracked fleet.
func (e *Engine) Recommendations() []model.Recommendation {
	return e.recommendations(e.fleet.List())
}

// History returns up to limit of the most recent runs, oldest first, along
// with the all-time run count.
func (e *Engine) History(limit int) ([]model.OptimizationRun, int) {
	return e.ledger.Recent(limit), e.ledger.Count()
}

// FleetSize reports the number of vehicles currently tracked.
func (e *Engine) FleetSize() int { return e.fleet.Len() }

// ActiveRoutes reports the number of routes produced by the latest run.
func (e *Engine) ActiveRoutes() int { return int(e.active.Load()) }

func (e *Engine) recommendations(vehicles []model.Vehicle) []model.Recommendation {
	recs := e.recommender.Recommend(vehicles, e.ledger)
	if rr, ok := e.metrics.(metrics.RecommendationRecorder); ok {
		for _, rec := range recs {
			if err := rr.RecordRecommendation(metrics.RecommendationEvent{Type: rec.Type, Priority: rec.Priority, Time: time.Now()}); err != nil {
				e.logger.Errorf("recommendation metrics error: %v", err)
			}
		}
	}
	if e.bus != nil {
		e.bus.Publish(events.RecommendationsIssued{Count: len(recs), Time: time.Now()})
	}
	return recs
}

func (e *Engine) recordRunMetrics(run model.OptimizationRun, res model.AssignmentResult) {
	ev := metrics.RunEvent{
		RunID:           run.ID,
		TotalDeliveries: run.TotalDeliveries,
		TotalVehicles:   run.TotalVehicles,
		Assigned:        res.TotalAssigned,
		Unassigned:      len(res.UnassignedDeliveries),
		VehiclesUsed:    res.TotalVehiclesUsed,
		EfficiencyScore: run.EfficiencyScore,
		Time:            run.Timestamp,
	}
	if err := e.metrics.RecordRun(ev); err != nil {
		e.logger.Errorf("metrics error: %v", err)
	}
	if ar, ok := e.metrics.(metrics.AssignmentRecorder); ok {
		for id, a := range res.Assignments {
			if err := ar.RecordAssignment(metrics.AssignmentEvent{
				RunID:      run.ID,
				VehicleID:  id,
				Stops:      a.StopsCount,
				DistanceKm: a.TotalDistance,
				TimeMin:    a.EstimatedTime,
				Time:       run.Timestamp,
			}); err != nil {
				e.logger.Errorf("assignment metrics error: %v", err)
			}
		}
	}
	if fr, ok := e.metrics.(metrics.FleetSizeRecorder); ok {
		if err := fr.RecordFleetSize(run.TotalVehicles); err != nil {
			e.logger.Errorf("fleet size metrics error: %v", err)
		}
	}
	if ar, ok := e.metrics.(metrics.ActiveRoutesRecorder); ok {
		if err := ar.RecordActiveRoutes(res.TotalVehiclesUsed); err != nil {
			e.logger.Errorf("active routes metrics error: %v", err)
		}
	}
}
