package config

import "time"

// Config holds runtime settings for the needmarket CLI.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace REST API (no trailing slash).
//   - RequestTimeout: per-request timeout applied by the HTTP client.
//   - DatabasePath: SQLite path of the local session database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "needmarket.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
