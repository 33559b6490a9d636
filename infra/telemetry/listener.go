// Package telemetry ingests vehicle state updates pushed over MQTT and
// keeps the fleet snapshot current between optimization runs.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eagowl/fleet-optimizer/config"
	"github.com/eagowl/fleet-optimizer/core/events"
	"github.com/eagowl/fleet-optimizer/core/fleetstate"
	"github.com/eagowl/fleet-optimizer/core/model"
	"github.com/eagowl/fleet-optimizer/infra/logger"
	infmqtt "github.com/eagowl/fleet-optimizer/infra/mqtt"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// Listener subscribes to vehicle state topics and stores each update in the
// fleet snapshot. Each message carries the full state of one vehicle.
type Listener struct {
	cfg   config.TelemetryConfig
	cli   paho.Client
	fleet fleetstate.Store
	bus   eventbus.EventBus
	log   logger.Logger

	received  prometheus.Counter
	decodeErr prometheus.Counter
	lastSeen  prometheus.Gauge
}

// NewListener connects to MQTT and prepares telemetry ingestion.
func NewListener(mqttCfg infmqtt.Config, cfg config.TelemetryConfig, fleet fleetstate.Store, bus eventbus.EventBus) (*Listener, error) {
	if fleet == nil {
		return nil, fmt.Errorf("telemetry: nil fleet store")
	}
	opts, err := infmqtt.NewClientOptions(mqttCfg)
	if err != nil {
		return nil, err
	}
	id := mqttCfg.ClientID
	if id != "" {
		id += "-telemetry"
	} else {
		id = "telemetry-" + uuid.NewString()
	}
	opts.SetClientID(id)
	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	m, err := newListenerMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		cli.Disconnect(250)
		return nil, fmt.Errorf("telemetry metrics: %w", err)
	}
	return &Listener{
		cfg:       cfg,
		cli:       cli,
		fleet:     fleet,
		bus:       bus,
		log:       logger.New("telemetry"),
		received:  m.received,
		decodeErr: m.decodeErr,
		lastSeen:  m.lastSeen,
	}, nil
}

type listenerMetrics struct {
	received  prometheus.Counter
	decodeErr prometheus.Counter
	lastSeen  prometheus.Gauge
}

func newListenerMetrics(reg prometheus.Registerer) (listenerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var m listenerMetrics
	var err error
	if m.received, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_messages_total",
		Help: "Number of telemetry messages received",
	})); err != nil {
		return listenerMetrics{}, err
	}
	if m.decodeErr, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_decode_errors_total",
		Help: "Number of telemetry messages that failed to decode",
	})); err != nil {
		return listenerMetrics{}, err
	}
	if m.lastSeen, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "telemetry_last_message_timestamp_seconds",
		Help: "Unix timestamp of the last telemetry message",
	})); err != nil {
		return listenerMetrics{}, err
	}
	return m, nil
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

// Start subscribes to the state topic and blocks until the context is done.
func (l *Listener) Start(ctx context.Context) {
	topic := strings.TrimSuffix(l.cfg.StatePrefix, "/") + "/+"
	if token := l.cli.Subscribe(topic, l.cfg.QoS, l.onState); token.Wait() && token.Error() != nil {
		l.log.Errorf("subscribe state: %v", token.Error())
	}
	<-ctx.Done()
	if l.cli.IsConnected() {
		l.cli.Disconnect(250)
	}
}

func (l *Listener) onState(_ paho.Client, msg paho.Message) {
	if err := l.handleMessage(msg.Payload(), msg.Topic()); err != nil {
		l.decodeErr.Inc()
		l.log.Errorf("state decode: %v", err)
	}
}

func (l *Listener) handleMessage(payload []byte, topic string) error {
	var msg struct {
		VehicleID  string   `json:"vehicle_id"`
		DriverName string   `json:"driver_name"`
		Capacity   *float64 `json:"capacity"`
		Latitude   float64  `json:"latitude"`
		Longitude  float64  `json:"longitude"`
		FuelLevel  *float64 `json:"fuel_level"`
		MaxFuel    *float64 `json:"max_fuel"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	if msg.VehicleID == "" {
		msg.VehicleID = extractID(topic)
	}
	if msg.VehicleID == "" {
		return fmt.Errorf("telemetry message without vehicle id")
	}

	v := model.Vehicle{
		ID:         msg.VehicleID,
		DriverName: msg.DriverName,
		Capacity:   model.DefaultCapacity,
		CurrentLat: msg.Latitude,
		CurrentLon: msg.Longitude,
		FuelLevel:  model.DefaultFuelLevel,
		MaxFuel:    model.DefaultMaxFuel,
	}
	if v.DriverName == "" {
		v.DriverName = model.DefaultDriverName
	}
	if msg.Capacity != nil {
		v.Capacity = *msg.Capacity
	}
	if msg.FuelLevel != nil {
		v.FuelLevel = *msg.FuelLevel
	}
	if msg.MaxFuel != nil {
		v.MaxFuel = *msg.MaxFuel
	}

	l.fleet.Set(v)
	l.received.Inc()
	l.lastSeen.SetToCurrentTime()
	if l.bus != nil {
		l.bus.Publish(events.VehicleSeen{Vehicle: v, FleetSize: l.fleet.Len(), Time: time.Now()})
	}
	l.log.Debugf("telemetry update for %s", v.ID)
	return nil
}

func extractID(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}
