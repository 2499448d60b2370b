package config

import (
	"os"
	"time"
)

// parseEnv overlays Config with values from the environment. The cmd layer
// loads a local .env file (godotenv) before this runs, so .env entries and
// real environment variables are handled uniformly.
//
// Variables:
//
//	PANKITCHEN_SERVER_URL     base URL of the backend server
//	PANKITCHEN_DATABASE_PATH  path of the local database file
//	PANKITCHEN_HTTP_TIMEOUT   duration string, e.g. "30s"
func parseEnv(cfg *Config) {
	if v := os.Getenv("PANKITCHEN_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("PANKITCHEN_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PANKITCHEN_HTTP_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = parsed
		}
	}
}
