package config

import (
	"encoding/json"
	"os"

	"github.com/jobtechradar/radar/internal/flagx"
	"github.com/jobtechradar/radar/internal/timex"
)

// JsonConfig is the DTO for the optional JSON config file. Durations can
// be written either as strings ("15s") or integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseDSN    string         `json:"database_dsn"`
	TrendsLimit    int            `json:"trends_limit"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Absent file flag means no JSON layer. Read or unmarshal errors panic;
// only explicitly set fields override the defaults.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.TrendsLimit > 0 {
		cfg.TrendsLimit = jc.TrendsLimit
	}
}
