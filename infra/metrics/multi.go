package metrics

import coremetrics "github.com/eagowl/fleet-optimizer/core/metrics"

// MultiSink fans optimizer events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRun forwards the run to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRun(ev coremetrics.RunEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRun(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordAssignment forwards route assignments when supported by the sink.
func (m *MultiSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.AssignmentRecorder); ok {
			if err := rec.RecordAssignment(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordFuelCheck forwards fuel evaluations when supported by the sink.
func (m *MultiSink) RecordFuelCheck(ev coremetrics.FuelCheckEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FuelCheckRecorder); ok {
			if err := rec.RecordFuelCheck(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRecommendation forwards recommendations when supported by the sink.
func (m *MultiSink) RecordRecommendation(ev coremetrics.RecommendationEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.RecommendationRecorder); ok {
			if err := rec.RecordRecommendation(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordVehicleState forwards telemetry snapshots when supported by the sink.
func (m *MultiSink) RecordVehicleState(ev coremetrics.VehicleStateEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.VehicleStateRecorder); ok {
			if err := rec.RecordVehicleState(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordFleetSize forwards fleet size metrics when supported by the sink.
func (m *MultiSink) RecordFleetSize(size int) error {
	for _, s := range m.Sinks {
		if fr, ok := s.(coremetrics.FleetSizeRecorder); ok {
			if err := fr.RecordFleetSize(size); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordActiveRoutes forwards the latest route count when supported by the sink.
func (m *MultiSink) RecordActiveRoutes(count int) error {
	for _, s := range m.Sinks {
		if ar, ok := s.(coremetrics.ActiveRoutesRecorder); ok {
			if err := ar.RecordActiveRoutes(count); err != nil {
				return err
			}
		}
	}
	return nil
}
