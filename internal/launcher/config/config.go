// Package config handles configuration for the launcher: defaults, an
// optional JSON overlay, and command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the launcher shell.
//
// Fields:
//   - DatabasePath: sqlite file holding all persisted launcher state.
//   - SecretKey: HMAC secret signing the persisted session token.
//   - LogLevel: debug | info | warn | error.
//   - RefreshInterval: how often the shell redraws progress lines. Display
//     only; simulation cadences are product behavior and not configurable.
type Config struct {
	DatabasePath    string
	SecretKey       string
	LogLevel        string
	RefreshInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "launcher.db"
	c.SecretKey = "majestic-local"
	c.LogLevel = "info"
	c.RefreshInterval = 1 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
