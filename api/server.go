// Package api assembles the HTTP surface of the optimizer service.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	eventsapi "github.com/eagowl/fleet-optimizer/api/events"
	fleetapi "github.com/eagowl/fleet-optimizer/api/fleet"
	optimizerapi "github.com/eagowl/fleet-optimizer/api/optimizer"
	"github.com/eagowl/fleet-optimizer/config"
	"github.com/eagowl/fleet-optimizer/core/logger"
	"github.com/eagowl/fleet-optimizer/internal/eventbus"
)

// Engine is everything the HTTP surface needs from the optimization engine.
type Engine interface {
	optimizerapi.Engine
	fleetapi.Engine
}

// Routes builds the service handler: endpoint mux wrapped in recovery,
// metrics and request-logging middleware. A nil bus disables the websocket
// event stream; a nil registerer falls back to the default Prometheus
// registry.
func Routes(eng Engine, bus eventbus.EventBus, version string, log logger.Logger, reg prometheus.Registerer) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle("/optimize", optimizerapi.NewOptimizeHandler(eng, log))
	mux.Handle("/fuel-efficiency", optimizerapi.NewFuelHandler(eng, log))
	mux.Handle("/recommendations", fleetapi.NewRecommendationsHandler(eng))
	mux.Handle("/history", fleetapi.NewHistoryHandler(eng))
	mux.Handle("/health", fleetapi.NewHealthHandler(eng, version))
	if bus != nil {
		mux.Handle("/events/ws", eventsapi.NewStreamHandler(bus, log))
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	m, err := newHTTPMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("http metrics: %w", err)
	}
	return recoverMiddleware(log, m.middleware(loggingMiddleware(log, mux))), nil
}

// Server runs the HTTP API with graceful shutdown.
type Server struct {
	srv *http.Server
	log logger.Logger
}

// NewServer creates a Server bound to the configured address.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
			ReadTimeout:       cfg.ReadTimeout(),
			WriteTimeout:      cfg.WriteTimeout(),
			IdleTimeout:       cfg.IdleTimeout(),
		},
		log: log,
	}
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("http api listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
