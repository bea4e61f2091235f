// Package config holds runtime settings for the Torq wallet CLI and the
// layered loading logic: defaults, then an optional JSON file, then
// command-line flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the wallet CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite store.
//   - MiningTickInterval: how often the mining readout is recomputed.
//   - TransferDelay: simulated transfer processing latency.
//   - SessionTTL: validity window of the persisted session token.
//   - SessionSecret: HS256 signing secret for session tokens.
type Config struct {
	DatabaseDSN        string
	MiningTickInterval time.Duration
	TransferDelay      time.Duration
	SessionTTL         time.Duration
	SessionSecret      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "torq.db"
	c.MiningTickInterval = 100 * time.Millisecond
	c.TransferDelay = 2 * time.Second
	c.SessionTTL = 24 * time.Hour
	c.SessionSecret = "torq-local-secret"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
