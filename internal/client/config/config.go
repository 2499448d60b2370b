// Package config handles configuration for the Pankitchen CLI, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Pankitchen CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API.
//   - DatabasePath: path of the local SQLite file holding credentials.
//   - HTTPTimeout: per-request timeout; zero keeps the transport default.
type Config struct {
	ServerURL    string
	DatabasePath string
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.DatabasePath = "pankitchen.db"
	c.HTTPTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
