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

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"client"}, args...)
}

func TestParseJsonOverlays(t *testing.T) {
	path := writeConfigFile(t, `{
  "api_base_url": "https://json.example.com",
  "api_timeout_ms": 4000,
  "debug": true,
  "database_path": "json.db"
}`)
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 4*time.Second, cfg.RequestTimeout)
	require.True(t, cfg.Debug)
	require.Equal(t, "json.db", cfg.DatabasePath)
}

func TestParseJsonPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "https://json.example.com"}`)
	withArgs(t, "-config", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "session.db", cfg.DatabasePath)
}

func TestParseJsonNoFileFlagIsNoop(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
}

func TestParseJsonUnreadableFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "missing.json"))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
