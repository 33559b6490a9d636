// Package config loads the service configuration from a yaml or json file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/eagowl/fleet-optimizer/core/metrics"
	"github.com/eagowl/fleet-optimizer/core/optimizer"
	"github.com/eagowl/fleet-optimizer/infra/mqtt"
)

// envPrefix marks environment variables that override file values, e.g.
// FLEETOPT_SERVER__ADDR=:8080 overrides server.addr.
const envPrefix = "FLEETOPT_"

type Config struct {
	Server    ServerConfig     `json:"server"`
	Engine    optimizer.Config `json:"engine"`
	Ledger    LedgerConfig     `json:"ledger"`
	Metrics   metrics.Config   `json:"metrics"`
	MQTT      mqtt.Config      `json:"mqtt"`
	Telemetry TelemetryConfig  `json:"telemetry"`
}

// Load reads the configuration file at path and applies environment
// overrides. A missing file is not an error: the service then runs on
// defaults plus environment values.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Engine.SetDefaults()
	cfg.Ledger.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Telemetry.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section plus the cross-section constraints.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := c.Ledger.Validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if c.Telemetry.Enabled && c.MQTT.Broker == "" {
		return fmt.Errorf("telemetry: mqtt broker is required when telemetry is enabled")
	}
	return nil
}
