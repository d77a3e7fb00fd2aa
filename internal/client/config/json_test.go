package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_AllFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "http://example.com/api",
		"request_timeout": "30s",
		"database_dsn": "custom.db",
		"trends_limit": 10
	}`)
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://example.com/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "custom.db", cfg.DatabaseDSN)
	require.Equal(t, 10, cfg.TrendsLimit)
}

func TestParseJson_PartialKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"database_dsn": "other.db"}`)
	withArgs(t, "-config", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "other.db", cfg.DatabaseDSN)
	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "missing.json"))

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}
