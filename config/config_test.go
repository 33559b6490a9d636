package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `server:
  addr: ":8080"
engine:
  avg_speed_kmh: 35
  max_stops_per_vehicle: 4
ledger:
  capacity: 25
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9100"
mqtt:
  broker: "tcp://localhost:1883"
  client_id: "optimizer"
telemetry:
  enabled: true
  state_topic_prefix: "fleet/vehicles/state"
  qos: 1
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Engine.AvgSpeedKmh != 35 || cfg.Engine.MaxStopsPerVehicle != 4 {
		t.Fatalf("engine config not loaded: %+v", cfg.Engine)
	}
	if cfg.Engine.SearchRadiusKm != 50 {
		t.Fatalf("expected default search radius, got %v", cfg.Engine.SearchRadiusKm)
	}
	if cfg.Ledger.Capacity != 25 {
		t.Fatalf("ledger capacity = %d", cfg.Ledger.Capacity)
	}
	if !cfg.Metrics.PrometheusEnabled || cfg.Metrics.PrometheusAddr != ":9100" {
		t.Fatalf("metrics config not loaded: %+v", cfg.Metrics)
	}
	if cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Fatalf("mqtt broker = %q", cfg.MQTT.Broker)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.QoS != 1 {
		t.Fatalf("telemetry config not loaded: %+v", cfg.Telemetry)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":5003" {
		t.Fatalf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Engine.MaxStopsPerVehicle != 5 || cfg.Engine.SearchRadiusKm != 50 {
		t.Fatalf("engine defaults not applied: %+v", cfg.Engine)
	}
	if cfg.Ledger.Capacity != 100 {
		t.Fatalf("ledger default capacity = %d", cfg.Ledger.Capacity)
	}
	if cfg.Telemetry.StatePrefix != "fleet/vehicles/state" {
		t.Fatalf("telemetry default prefix = %q", cfg.Telemetry.StatePrefix)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FLEETOPT_SERVER__ADDR", ":7070")
	t.Setenv("FLEETOPT_LEDGER__CAPACITY", "12")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("env addr override not applied: %q", cfg.Server.Addr)
	}
	if cfg.Ledger.Capacity != 12 {
		t.Fatalf("env capacity override not applied: %d", cfg.Ledger.Capacity)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadTelemetryRequiresBroker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "telemetry:\n  enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error when telemetry is enabled without a broker")
	}
}
