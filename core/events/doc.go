// Package events defines the engine events emitted on the event bus.
//
// Available event types:
//   - RunCompleted: an optimization run finished and was recorded
//   - FuelChecked: a fuel feasibility evaluation was served
//   - RecommendationsIssued: a recommendation list was produced
//   - VehicleSeen: a telemetry update was received for a vehicle
package events
