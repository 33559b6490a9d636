package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/eagowl/fleet-optimizer/core/events"
	coremetrics "github.com/eagowl/fleet-optimizer/core/metrics"
	"github.com/eagowl/fleet-optimizer/core/model"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

type collectorSink struct {
	mu     sync.Mutex
	states []coremetrics.VehicleStateEvent
	sizes  []int
}

func (s *collectorSink) RecordRun(coremetrics.RunEvent) error { return nil }

func (s *collectorSink) RecordVehicleState(ev coremetrics.VehicleStateEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, ev)
	return nil
}

func (s *collectorSink) RecordFleetSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes = append(s.sizes, size)
	return nil
}

func (s *collectorSink) snapshot() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states), len(s.sizes)
}

func TestEventCollectorForwardsTelemetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := eventbus.New()
	sink := &collectorSink{}
	StartEventCollector(ctx, bus, sink)

	bus.Publish(events.VehicleSeen{
		Vehicle:   model.Vehicle{ID: "v1", FuelLevel: 20, MaxFuel: 60},
		FleetSize: 4,
		Time:      time.Now(),
	})

	assert.Eventually(t, func() bool {
		states, sizes := sink.snapshot()
		return states == 1 && sizes == 1
	}, time.Second, 10*time.Millisecond)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.states[0].Vehicle.ID != "v1" {
		t.Errorf("vehicle id = %s", sink.states[0].Vehicle.ID)
	}
	if sink.sizes[0] != 4 {
		t.Errorf("fleet size = %d", sink.sizes[0])
	}
}

func TestEventCollectorNilArgs(t *testing.T) {
	// Must not panic or leak a goroutine.
	StartEventCollector(context.Background(), nil, nil)
	StartEventCollector(context.Background(), eventbus.New(), nil)
}
