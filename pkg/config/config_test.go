package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agriverify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.BackendURL)
	assert.Equal(t, "http://localhost:8080", cfg.FrontendURL)
	assert.Equal(t, time.Second, cfg.Delay)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.LLM)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Health)
	assert.Equal(t, "Loamy", cfg.Fixtures.Sample.SoilType)
	assert.False(t, cfg.Report.ExitZero)
}

func TestLoadFileOverlaysOnlyGivenKeys(t *testing.T) {
	path := writeConfig(t, `
backend_url: https://agricure.example.com
delay: 250ms
timeouts:
  llm: 45s
fixtures:
  sample:
    crop_type: Wheat
  location:
    latitude: 12.97
    longitude: 77.59
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://agricure.example.com", cfg.BackendURL)
	assert.Equal(t, "http://localhost:8080", cfg.FrontendURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, 45*time.Second, cfg.Timeouts.LLM)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.Prediction)
	assert.Equal(t, "Wheat", cfg.Fixtures.Sample.CropType)
	assert.Equal(t, "Loamy", cfg.Fixtures.Sample.SoilType)
	assert.InDelta(t, 12.97, cfg.Fixtures.Location.Latitude, 1e-9)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	path := writeConfig(t, "backend_url: http://from-file:8000\n")
	t.Setenv("AGRICURE_BACKEND_URL", "http://from-env:9000")
	t.Setenv("AGRICURE_CHECK_DELAY", "0s")
	t.Setenv("AGRICURE_EXIT_ZERO", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9000", cfg.BackendURL)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.True(t, cfg.Report.ExitZero)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("AGRICURE_BACKEND_URL", "not a url")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "not a url", cfg.BackendURL)
	assert.Error(t, cfg.Validate())

	cfg.BackendURL = "http://127.0.0.1:8000"
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "backend_url: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty backend", func(c *Config) { c.BackendURL = "" }, "backend_url is required"},
		{"frontend without scheme", func(c *Config) { c.FrontendURL = "localhost:8080" }, "frontend_url must use http or https"},
		{"missing host", func(c *Config) { c.BackendURL = "http://" }, "backend_url has no host"},
		{"negative delay", func(c *Config) { c.Delay = -time.Second }, "delay must not be negative"},
		{"zero timeout", func(c *Config) { c.Timeouts.SoilData = 0 }, "timeouts.soil_data must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "agriverify.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
