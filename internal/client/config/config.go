package config

import "time"

// Config holds runtime settings for the radar CLI.
type Config struct {
	// APIBaseURL is the root of the JobTech Radar REST API,
	// e.g. "http://localhost:8000/api".
	APIBaseURL string

	// RequestTimeout bounds every HTTP request.
	RequestTimeout time.Duration

	// DatabaseDSN is the local sqlite file holding the session token.
	DatabaseDSN string

	// TrendsLimit is the top-N size for the trends view.
	TrendsLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "radar.db"
	c.TrendsLimit = 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
