package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/eagowl/fleet-optimizer/config"
	"github.com/eagowl/fleet-optimizer/core/events"
	"github.com/eagowl/fleet-optimizer/core/fleetstate"
	"github.com/eagowl/fleet-optimizer/infra/logger"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

func newTestListener(fleet fleetstate.Store, bus eventbus.EventBus) *Listener {
	return &Listener{
		cfg:       config.TelemetryConfig{StatePrefix: "fleet/vehicle/state"},
		fleet:     fleet,
		bus:       bus,
		log:       logger.NopLogger{},
		received:  prometheus.NewCounter(prometheus.CounterOpts{Name: "test_telemetry_messages_total"}),
		decodeErr: prometheus.NewCounter(prometheus.CounterOpts{Name: "test_telemetry_decode_errors_total"}),
		lastSeen:  prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_telemetry_last_message"}),
	}
}

func TestHandleMessage(t *testing.T) {
	fleet := fleetstate.NewMemoryStore()
	l := newTestListener(fleet, nil)

	payload := []byte(`{"vehicle_id":"veh1","driver_name":"Ana","capacity":800,"latitude":48.85,"longitude":2.35,"fuel_level":22,"max_fuel":70}`)
	if err := l.handleMessage(payload, "fleet/vehicle/state/veh1"); err != nil {
		t.Fatalf("handle: %v", err)
	}
	vs := fleet.List()
	if len(vs) != 1 {
		t.Fatalf("expected 1 vehicle got %d", len(vs))
	}
	v := vs[0]
	if v.ID != "veh1" || v.DriverName != "Ana" || v.Capacity != 800 {
		t.Fatalf("unexpected vehicle: %#v", v)
	}
	if v.FuelLevel != 22 || v.MaxFuel != 70 || v.CurrentLat != 48.85 {
		t.Fatalf("unexpected vehicle: %#v", v)
	}
	if got := testutil.ToFloat64(l.received); got != 1 {
		t.Fatalf("received counter = %v", got)
	}
}

func TestHandleMessageDefaults(t *testing.T) {
	fleet := fleetstate.NewMemoryStore()
	l := newTestListener(fleet, nil)

	if err := l.handleMessage([]byte(`{"fuel_level":12}`), "fleet/vehicle/state/veh9"); err != nil {
		t.Fatalf("handle: %v", err)
	}
	v := fleet.List()[0]
	if v.ID != "veh9" {
		t.Fatalf("expected id from topic got %s", v.ID)
	}
	if v.DriverName != "Unknown" || v.Capacity != 1000 || v.MaxFuel != 60 {
		t.Fatalf("defaults not applied: %#v", v)
	}
	if v.FuelLevel != 12 {
		t.Fatalf("fuel level = %v", v.FuelLevel)
	}
}

func TestHandleMessageUpdatesExisting(t *testing.T) {
	fleet := fleetstate.NewMemoryStore()
	l := newTestListener(fleet, nil)

	_ = l.handleMessage([]byte(`{"fuel_level":40}`), "fleet/vehicle/state/veh1")
	_ = l.handleMessage([]byte(`{"fuel_level":35}`), "fleet/vehicle/state/veh1")
	if fleet.Len() != 1 {
		t.Fatalf("expected 1 tracked vehicle got %d", fleet.Len())
	}
	if v := fleet.List()[0]; v.FuelLevel != 35 {
		t.Fatalf("expected latest fuel level got %v", v.FuelLevel)
	}
}

func TestHandleMessageNoID(t *testing.T) {
	l := newTestListener(fleetstate.NewMemoryStore(), nil)
	if err := l.handleMessage([]byte(`{"fuel_level":12}`), ""); err == nil {
		t.Fatalf("expected error without vehicle id")
	}
}

func TestHandleMessagePublishesEvent(t *testing.T) {
	fleet := fleetstate.NewMemoryStore()
	bus := eventbus.New()
	sub := bus.Subscribe()
	l := newTestListener(fleet, bus)

	if err := l.handleMessage([]byte(`{"vehicle_id":"veh1"}`), "fleet/vehicle/state/veh1"); err != nil {
		t.Fatalf("handle: %v", err)
	}
	ev := <-sub
	seen, ok := ev.(events.VehicleSeen)
	if !ok {
		t.Fatalf("expected VehicleSeen got %T", ev)
	}
	if seen.Vehicle.ID != "veh1" || seen.FleetSize != 1 {
		t.Fatalf("unexpected event: %#v", seen)
	}
}

func TestOnStateCountsDecodeErrors(t *testing.T) {
	l := newTestListener(fleetstate.NewMemoryStore(), nil)
	msg := &fakeMessage{topic: "fleet/vehicle/state/veh1", payload: []byte("not json")}
	l.onState(nil, msg)
	if got := testutil.ToFloat64(l.decodeErr); got != 1 {
		t.Fatalf("decode error counter = %v", got)
	}
}

func TestExtractID(t *testing.T) {
	if id := extractID("fleet/vehicle/state/veh42"); id != "veh42" {
		t.Fatalf("unexpected id %s", id)
	}
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func TestListenerMetricsReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := newListenerMetrics(reg)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// A second listener in the same process must reuse the collectors
	// instead of failing or panicking on duplicate registration.
	second, err := newListenerMetrics(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}
	first.received.Inc()
	second.received.Inc()
	if got := testutil.ToFloat64(second.received); got != 2 {
		t.Fatalf("expected shared counter at 2, got %v", got)
	}
}
