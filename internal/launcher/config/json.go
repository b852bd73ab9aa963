package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/derol/majestic-launcher/internal/flagx"
	"github.com/derol/majestic-launcher/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// can be written either as strings like "1s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath    string         `json:"database_path"`
	SecretKey       string         `json:"secret_key"`
	LogLevel        string         `json:"log_level"`
	RefreshInterval timex.Duration `json:"refresh_interval"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. No flag, no overlay. Read or unmarshal errors panic;
// a broken config file should stop the launcher immediately.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RefreshInterval.Duration != 0 {
		cfg.RefreshInterval = time.Duration(jc.RefreshInterval.Duration)
	}
}
