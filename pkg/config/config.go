// Package config holds the runtime configuration of a verification run.
// Values start from Default, are overlaid by an optional YAML file, then by
// AGRICURE_* environment variables; the CLI applies flag overrides last.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"agriverify/pkg/fixtures"
)

// Config is built once at startup and passed to the runner.
type Config struct {
	BackendURL  string        `yaml:"backend_url" env:"AGRICURE_BACKEND_URL"`
	FrontendURL string        `yaml:"frontend_url" env:"AGRICURE_FRONTEND_URL"`
	Delay       time.Duration `yaml:"delay" env:"AGRICURE_CHECK_DELAY"`
	UserAgent   string        `yaml:"user_agent" env:"AGRICURE_USER_AGENT"`

	Timeouts Timeouts     `yaml:"timeouts"`
	Report   Report       `yaml:"report"`
	Fixtures fixtures.Set `yaml:"fixtures"`
}

// Timeouts bounds each check's single request.
type Timeouts struct {
	Health     time.Duration `yaml:"health" env:"AGRICURE_TIMEOUT_HEALTH"`
	Status     time.Duration `yaml:"status" env:"AGRICURE_TIMEOUT_STATUS"`
	Prediction time.Duration `yaml:"prediction" env:"AGRICURE_TIMEOUT_PREDICTION"`
	LLM        time.Duration `yaml:"llm" env:"AGRICURE_TIMEOUT_LLM"`
	SoilData   time.Duration `yaml:"soil_data" env:"AGRICURE_TIMEOUT_SOIL_DATA"`
	Frontend   time.Duration `yaml:"frontend" env:"AGRICURE_TIMEOUT_FRONTEND"`
}

// Report controls the optional outputs written after the console summary.
type Report struct {
	JUnitPath   string `yaml:"junit_path" env:"AGRICURE_JUNIT_PATH"`
	MetricsPath string `yaml:"metrics_path" env:"AGRICURE_METRICS_PATH"`
	NoColor     bool   `yaml:"no_color" env:"AGRICURE_NO_COLOR"`
	// ExitZero keeps the exit status at 0 even when checks fail.
	ExitZero bool `yaml:"exit_zero" env:"AGRICURE_EXIT_ZERO"`
}

// Default returns the configuration of a local development stack.
func Default() *Config {
	return &Config{
		BackendURL:  "http://127.0.0.1:8000",
		FrontendURL: "http://localhost:8080",
		Delay:       time.Second,
		UserAgent:   "AgriCure-Integration-Test/1.0",
		Timeouts: Timeouts{
			Health:     10 * time.Second,
			Status:     10 * time.Second,
			Prediction: 15 * time.Second,
			LLM:        30 * time.Second,
			SoilData:   15 * time.Second,
			Frontend:   10 * time.Second,
		},
		Fixtures: fixtures.Default(),
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when path
// is empty) and the environment. Callers apply their own overrides and then
// call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return nil
}

// ApplyEnv overlays AGRICURE_* environment variables onto cfg.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// Validate reports the first field that would make a run meaningless.
func (c *Config) Validate() error {
	if err := validateBaseURL("backend_url", c.BackendURL); err != nil {
		return err
	}
	if err := validateBaseURL("frontend_url", c.FrontendURL); err != nil {
		return err
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	for name, d := range map[string]time.Duration{
		"health":     c.Timeouts.Health,
		"status":     c.Timeouts.Status,
		"prediction": c.Timeouts.Prediction,
		"llm":        c.Timeouts.LLM,
		"soil_data":  c.Timeouts.SoilData,
		"frontend":   c.Timeouts.Frontend,
	} {
		if d <= 0 {
			return fmt.Errorf("timeouts.%s must be positive, got %s", name, d)
		}
	}
	return nil
}

func validateBaseURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, raw)
	}
	if u.Host == "" {
		return errors.New(field + " has no host")
	}
	return nil
}
