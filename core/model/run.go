package model

import "time"

// OptimizationRun summarizes one completed optimization for the history
// ledger. Entries are write-once: once recorded they are never updated.
type OptimizationRun struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	TotalDeliveries int       `json:"total_deliveries"`
	TotalVehicles   int       `json:"total_vehicles"`
	AssignmentsMade int       `json:"assignments_made"`
	// EfficiencyScore is deliveries assigned over deliveries submitted,
	// with an empty submission counting as one to keep the ratio defined.
	EfficiencyScore float64 `json:"efficiency_score"`
}
