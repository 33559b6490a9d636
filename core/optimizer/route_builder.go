package optimizer

import (
	"github.com/eagowl/fleet-optimizer/core/geo"
	"github.com/eagowl/fleet-optimizer/core/model"
)

// RouteBuilder sequences one vehicle's stops with a priority-weighted
// nearest-neighbor heuristic.
type RouteBuilder struct {
	SpeedKmh float64
}

// NewRouteBuilder returns a builder estimating travel time at the given
// average speed. Non-positive speeds fall back to the default.
func NewRouteBuilder(speedKmh float64) RouteBuilder {
	if speedKmh <= 0 {
		speedKmh = DefaultAvgSpeedKmh
	}
	return RouteBuilder{SpeedKmh: speedKmh}
}

// priorityFactor discounts a stop's distance during selection. Priority 1
// leaves it unchanged; priority 5 shortens it by 40%.
func priorityFactor(priority int) float64 {
	return 1 - float64(priority-1)*0.1
}

// Build orders the stops starting from the given position and returns the
// route, the total raw distance in kilometers and the estimated time in
// minutes. Selection ranks candidates by priority-adjusted score while the
// distance total accumulates the raw geodesic legs; the discount biases
// ordering only and never inflates reported mileage. The input slice is not
// modified.
func (b RouteBuilder) Build(stops []model.DeliveryStop, startLat, startLon float64) ([]model.DeliveryStop, float64, float64) {
	route := make([]model.DeliveryStop, 0, len(stops))
	if len(stops) == 0 {
		return route, 0, 0
	}

	visited := make([]bool, len(stops))
	curLat, curLon := startLat, startLon
	var totalKm float64
	for len(route) < len(stops) {
		best := -1
		var bestScore, bestRaw float64
		for i, s := range stops {
			if visited[i] {
				continue
			}
			raw := geo.Distance(curLat, curLon, s.Latitude, s.Longitude)
			score := raw * priorityFactor(s.Priority)
			// Strict comparison keeps the first seen stop on ties.
			if best == -1 || score < bestScore {
				best, bestScore, bestRaw = i, score, raw
			}
		}
		visited[best] = true
		route = append(route, stops[best])
		totalKm += bestRaw
		curLat, curLon = stops[best].Latitude, stops[best].Longitude
	}

	minutes := totalKm / b.SpeedKmh * 60
	for _, s := range route {
		minutes += float64(s.EstimatedDuration)
	}
	return route, totalKm, minutes
}
