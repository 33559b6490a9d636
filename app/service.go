// Package app wires the configuration into a runnable service.
package app

import (
	"context"
	"fmt"

	"github.com/eagowl/fleet-optimizer/api"
	"github.com/eagowl/fleet-optimizer/config"
	"github.com/eagowl/fleet-optimizer/core/fleetstate"
	"github.com/eagowl/fleet-optimizer/core/ledger"
	coremetrics "github.com/eagowl/fleet-optimizer/core/metrics"
	"github.com/eagowl/fleet-optimizer/core/optimizer"
	"github.com/eagowl/fleet-optimizer/infra/logger"
	"github.com/eagowl/fleet-optimizer/infra/metrics"
	"github.com/eagowl/fleet-optimizer/infra/telemetry"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Service owns the optimization engine and its HTTP and MQTT frontends.
type Service struct {
	Engine   *optimizer.Engine
	api      *api.Server
	listener *telemetry.Listener
	bus      eventbus.EventBus
	sink     coremetrics.Sink
	cfg      *config.Config
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink
	switch len(sinks) {
	case 0:
		sink = coremetrics.NopSink{}
	case 1:
		sink = sinks[0]
	default:
		sink = metrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	led := ledger.NewMemory(cfg.Ledger.Capacity)
	fleet := fleetstate.NewMemoryStore()
	eng, err := optimizer.NewEngine(cfg.Engine, led, fleet, sink, bus, logger.New("optimizer"))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	handler, err := api.Routes(eng, bus, Version, logger.New("http"), nil)
	if err != nil {
		return nil, err
	}
	svc := &Service{
		Engine: eng,
		api:    api.NewServer(cfg.Server, handler, logger.New("http")),
		bus:    bus,
		sink:   sink,
		cfg:    cfg,
		log:    logg,
	}

	if cfg.Telemetry.Enabled {
		lst, err := telemetry.NewListener(cfg.MQTT, cfg.Telemetry, fleet, bus)
		if err != nil {
			return nil, fmt.Errorf("telemetry listener: %w", err)
		}
		svc.listener = lst
	}
	return svc, nil
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.listener != nil {
		go s.listener.Start(ctx)
	}
	return s.api.Run(ctx)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if closer, ok := s.sink.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}
