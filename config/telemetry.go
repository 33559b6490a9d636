package config

// TelemetryConfig configures the MQTT vehicle state listener. When disabled
// the fleet snapshot is refreshed only by optimize submissions.
type TelemetryConfig struct {
	Enabled bool `json:"enabled"`
	// StatePrefix is the topic prefix vehicles publish their state under;
	// the listener subscribes to StatePrefix + "/+" with the vehicle id
	// as the final segment.
	StatePrefix string `json:"state_topic_prefix"`
	QoS         byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *TelemetryConfig) SetDefaults() {
	if c.StatePrefix == "" {
		c.StatePrefix = "fleet/vehicles/state"
	}
}
