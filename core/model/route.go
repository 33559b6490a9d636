package model

import "time"

// MethodNearestNeighbor identifies the sequencing heuristic used for all
// routes produced by the engine.
const MethodNearestNeighbor = "nearest_neighbor_with_priority"

// RouteAssignment is the optimized route computed for one vehicle.
type RouteAssignment struct {
	VehicleID string `json:"vehicle_id"`
	// Route lists the assigned stops in visiting order.
	Route []DeliveryStop `json:"route"`
	// TotalDistance is the sum of the raw geodesic legs in kilometers.
	TotalDistance float64 `json:"total_distance"`
	// EstimatedTime is travel plus service time in minutes.
	EstimatedTime float64 `json:"estimated_time"`
	StopsCount    int     `json:"stops_count"`
	Method        string  `json:"optimization_method"`
}

// AssignmentResult is the outcome of partitioning deliveries across a fleet.
// Assignments and UnassignedDeliveries together cover every submitted stop
// exactly once.
type AssignmentResult struct {
	Assignments          map[string]RouteAssignment `json:"assignments"`
	UnassignedDeliveries []DeliveryStop             `json:"unassigned_deliveries"`
	TotalVehiclesUsed    int                        `json:"total_vehicles_used"`
	TotalAssigned        int                        `json:"total_deliveries_assigned"`
	Timestamp            time.Time                  `json:"optimization_timestamp"`
}
