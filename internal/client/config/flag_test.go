package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	withArgs(t, "-a", "http://cli:9000/api", "-t", "45", "-d", "cli.db", "-n", "30")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://cli:9000/api", cfg.APIBaseURL)
	require.Equal(t, 45*time.Second, cfg.RequestTimeout)
	require.Equal(t, "cli.db", cfg.DatabaseDSN)
	require.Equal(t, 30, cfg.TrendsLimit)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	// The -c flag belongs to the JSON layer and must not break parsing.
	withArgs(t, "-c", "whatever.json", "-a", "http://cli:9000/api")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	require.Equal(t, "http://cli:9000/api", cfg.APIBaseURL)
}
