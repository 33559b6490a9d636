package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/eagowl/fleet-optimizer/core/metrics"
)

// PromSink records optimizer events in Prometheus metrics.
type PromSink struct {
	runs            prometheus.Counter
	assigned        prometheus.Counter
	unassigned      prometheus.Counter
	efficiency      prometheus.Histogram
	routeDistance   prometheus.Histogram
	fuelChecks      *prometheus.CounterVec
	recommendations *prometheus.CounterVec
	fuelRatio       *prometheus.GaugeVec
	fleet           prometheus.Gauge
	activeRoutes    prometheus.Gauge
}

// NewPromSink registers optimizer metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{}

	var err error
	if s.runs, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimizer_runs_total",
		Help: "Total number of optimization runs",
	})); err != nil {
		return nil, err
	}
	if s.assigned, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimizer_deliveries_assigned_total",
		Help: "Total number of deliveries assigned to vehicles",
	})); err != nil {
		return nil, err
	}
	if s.unassigned, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimizer_deliveries_unassigned_total",
		Help: "Total number of deliveries left unassigned",
	})); err != nil {
		return nil, err
	}
	if s.efficiency, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimizer_run_efficiency_ratio",
		Help:    "Ratio of assigned deliveries per run",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})); err != nil {
		return nil, err
	}
	if s.routeDistance, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimizer_route_distance_km",
		Help:    "Planned route distance per vehicle",
		Buckets: []float64{5, 10, 25, 50, 100, 250},
	})); err != nil {
		return nil, err
	}
	if s.fuelChecks, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_fuel_checks_total",
		Help: "Total number of fuel feasibility checks",
	}, []string{"needs_refuel"})); err != nil {
		return nil, err
	}
	if s.recommendations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_recommendations_total",
		Help: "Total number of recommendations issued",
	}, []string{"type"})); err != nil {
		return nil, err
	}
	if s.fuelRatio, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "optimizer_vehicle_fuel_ratio",
		Help: "Last reported fuel ratio per vehicle",
	}, []string{"vehicle_id"})); err != nil {
		return nil, err
	}
	if s.fleet, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "optimizer_fleet_vehicles",
		Help: "Number of vehicles currently tracked",
	})); err != nil {
		return nil, err
	}
	if s.activeRoutes, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "optimizer_active_routes",
		Help: "Number of routes produced by the latest run",
	})); err != nil {
		return nil, err
	}
	return s, nil
}

// register adds c to the registry, reusing the existing collector when the
// same metric was already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}

// RecordRun updates the run counters and the efficiency histogram.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.Inc()
	s.assigned.Add(float64(ev.Assigned))
	s.unassigned.Add(float64(ev.Unassigned))
	s.efficiency.Observe(ev.EfficiencyScore)
	return nil
}

// RecordAssignment observes the planned distance of one vehicle route.
func (s *PromSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	s.routeDistance.Observe(ev.DistanceKm)
	return nil
}

// RecordFuelCheck counts fuel evaluations by refuel outcome.
func (s *PromSink) RecordFuelCheck(ev coremetrics.FuelCheckEvent) error {
	s.fuelChecks.WithLabelValues(strconv.FormatBool(ev.Report.NeedsRefuel)).Inc()
	return nil
}

// RecordRecommendation counts recommendations by type.
func (s *PromSink) RecordRecommendation(ev coremetrics.RecommendationEvent) error {
	s.recommendations.WithLabelValues(ev.Type).Inc()
	return nil
}

// RecordVehicleState sets the per-vehicle fuel ratio gauge.
func (s *PromSink) RecordVehicleState(ev coremetrics.VehicleStateEvent) error {
	s.fuelRatio.WithLabelValues(ev.Vehicle.ID).Set(ev.Vehicle.FuelRatio())
	return nil
}

// RecordFleetSize sets the gauge to the number of tracked vehicles.
func (s *PromSink) RecordFleetSize(size int) error {
	s.fleet.Set(float64(size))
	return nil
}

// RecordActiveRoutes sets the gauge to the latest route count.
func (s *PromSink) RecordActiveRoutes(count int) error {
	s.activeRoutes.Set(float64(count))
	return nil
}
