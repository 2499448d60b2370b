package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pankitchen/pankitchen/internal/flagx"
	"github.com/pankitchen/pankitchen/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	ServerURL    string         `json:"server_url"`
	DatabasePath string         `json:"database_path"`
	HTTPTimeout  timex.Duration `json:"http_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// is given via the -c/-config flags. When no path is given, nothing is
// loaded. Read or unmarshal errors panic; the config stage has no way to
// continue with a half-read file.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
}
