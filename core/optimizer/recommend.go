package optimizer

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/eagowl/fleet-optimizer/core/ledger"
	"github.com/eagowl/fleet-optimizer/core/model"
)

// Recommendation thresholds.
const (
	DefaultAlertPercent  = 20.0
	DefaultWarnPercent   = 40.0
	DefaultWindow        = 5
	DefaultMinEfficiency = 0.7
)

// RecommendationEngine derives operational advisories from the fleet's fuel
// state and recent optimization efficiency.
type RecommendationEngine struct {
	AlertPercent  float64
	WarnPercent   float64
	Window        int
	MinEfficiency float64
}

// NewRecommendationEngine returns an engine with the operational thresholds.
func NewRecommendationEngine() RecommendationEngine {
	return RecommendationEngine{
		AlertPercent:  DefaultAlertPercent,
		WarnPercent:   DefaultWarnPercent,
		Window:        DefaultWindow,
		MinEfficiency: DefaultMinEfficiency,
	}
}

// Recommend checks each vehicle's fuel percentage in iteration order, then
// the mean efficiency of the most recent runs once the ledger holds a full
// window. The result is never nil.
func (r RecommendationEngine) Recommend(vehicles []model.Vehicle, led ledger.Ledger) []model.Recommendation {
	recs := make([]model.Recommendation, 0)
	for _, v := range vehicles {
		pct := v.FuelPercent()
		switch {
		case pct < r.AlertPercent:
			p := pct
			recs = append(recs, model.Recommendation{
				Type:        model.RecommendationFuelAlert,
				VehicleID:   v.ID,
				DriverName:  v.DriverName,
				FuelPercent: &p,
				Priority:    model.RecommendationPriorityHigh,
				Message:     fmt.Sprintf("Vehicle %s needs refueling urgently", v.ID),
				Action:      "Route vehicle to nearest fuel station",
			})
		case pct < r.WarnPercent:
			p := pct
			recs = append(recs, model.Recommendation{
				Type:        model.RecommendationFuelWarning,
				VehicleID:   v.ID,
				DriverName:  v.DriverName,
				FuelPercent: &p,
				Priority:    model.RecommendationPriorityMedium,
				Message:     fmt.Sprintf("Vehicle %s fuel level is low", v.ID),
				Action:      "Plan refuel within next 4 hours",
			})
		}
	}

	if led != nil {
		recent := led.Recent(r.Window)
		if len(recent) == r.Window {
			scores := make([]float64, len(recent))
			for i, run := range recent {
				scores[i] = run.EfficiencyScore
			}
			if avg := stat.Mean(scores, nil); avg < r.MinEfficiency {
				recs = append(recs, model.Recommendation{
					Type:     model.RecommendationEfficiency,
					Priority: model.RecommendationPriorityMedium,
					Message:  fmt.Sprintf("Fleet efficiency is below optimal (%.1f%%)", avg*100),
					Action:   "Consider reassigning delivery zones or adjusting time windows",
				})
			}
		}
	}
	return recs
}
