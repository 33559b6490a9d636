package config

import "fmt"

// LedgerConfig bounds the in-memory run history.
type LedgerConfig struct {
	// Capacity is the number of most-recent optimization runs retained.
	// Older runs are evicted; the all-time count keeps increasing.
	Capacity int `json:"capacity"`
}

// SetDefaults applies sane defaults.
func (c *LedgerConfig) SetDefaults() {
	if c.Capacity == 0 {
		c.Capacity = 100
	}
}

// Validate checks mandatory fields.
func (c LedgerConfig) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}
