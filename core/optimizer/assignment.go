package optimizer

import (
	"sort"
	"time"

	"github.com/eagowl/fleet-optimizer/core/geo"
	"github.com/eagowl/fleet-optimizer/core/model"
)

// AssignmentEngine partitions delivery stops across a fleet and builds each
// vehicle's route.
type AssignmentEngine struct {
	MaxStops int
	RadiusKm float64
	Builder  RouteBuilder
}

// NewAssignmentEngine creates an engine from the configuration.
func NewAssignmentEngine(cfg Config) AssignmentEngine {
	cfg.SetDefaults()
	return AssignmentEngine{
		MaxStops: cfg.MaxStopsPerVehicle,
		RadiusKm: cfg.SearchRadiusKm,
		Builder:  NewRouteBuilder(cfg.AvgSpeedKmh),
	}
}

// Assign distributes the deliveries across the vehicles. Vehicles are ranked
// by fuel ratio, best first; ties keep submission order. Each vehicle takes
// the first qualifying stops from the remaining pool, in pool order, up to
// MaxStops and only when the stop lies within RadiusKm of the vehicle's
// position. Leftover stops are reported unassigned in submission order. The
// caller's slices are never reordered or mutated.
func (e AssignmentEngine) Assign(deliveries []model.DeliveryStop, vehicles []model.Vehicle) model.AssignmentResult {
	res := model.AssignmentResult{
		Assignments:          make(map[string]model.RouteAssignment, len(vehicles)),
		UnassignedDeliveries: []model.DeliveryStop{},
		Timestamp:            time.Now().UTC(),
	}

	ranked := make([]model.Vehicle, len(vehicles))
	copy(ranked, vehicles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FuelRatio() > ranked[j].FuelRatio()
	})

	assigned := make([]bool, len(deliveries))
	remaining := len(deliveries)

	for _, v := range ranked {
		if remaining == 0 {
			break
		}
		candidates := make([]model.DeliveryStop, 0, e.MaxStops)
		var picked []int
		for i, d := range deliveries {
			if assigned[i] {
				continue
			}
			if geo.Distance(v.CurrentLat, v.CurrentLon, d.Latitude, d.Longitude) < e.RadiusKm {
				candidates = append(candidates, d)
				picked = append(picked, i)
				if len(candidates) == e.MaxStops {
					break
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}

		route, distKm, minutes := e.Builder.Build(candidates, v.CurrentLat, v.CurrentLon)
		res.Assignments[v.ID] = model.RouteAssignment{
			VehicleID:     v.ID,
			Route:         route,
			TotalDistance: distKm,
			EstimatedTime: minutes,
			StopsCount:    len(route),
			Method:        model.MethodNearestNeighbor,
		}
		for _, i := range picked {
			assigned[i] = true
		}
		remaining -= len(picked)
	}

	for i, d := range deliveries {
		if !assigned[i] {
			res.UnassignedDeliveries = append(res.UnassignedDeliveries, d)
		}
	}
	res.TotalVehiclesUsed = len(res.Assignments)
	res.TotalAssigned = len(deliveries) - len(res.UnassignedDeliveries)
	return res
}
