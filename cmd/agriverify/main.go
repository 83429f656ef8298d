// Package main implements the command-line interface of the AgriCure integration verifier.
// It loads configuration, runs every check against the backend and frontend,
// prints the report and sets the exit status.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agriverify/pkg/checks"
	"agriverify/pkg/config"
	"agriverify/pkg/executor"
	"agriverify/pkg/reporter"
	"agriverify/pkg/target"
)

const defaultEnvFile = ".env"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one verification and returns the process exit status:
// 0 when every check passed (or -exit-zero is set), 1 when a check failed or
// a report file could not be written, 2 on usage or configuration errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("agriverify", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "Path to a YAML configuration file")
	envFile := flags.String("env-file", defaultEnvFile, "Dotenv file loaded before reading AGRICURE_* variables")
	backend := flags.String("backend", "", "Backend base URL (overrides config)")
	frontend := flags.String("frontend", "", "Frontend base URL (overrides config)")
	delay := flags.Duration("delay", 0, "Pause between checks (overrides config)")
	junitPath := flags.String("junit", "", "Write a JUnit XML report to this path")
	metricsPath := flags.String("metrics-file", "", "Write Prometheus textfile metrics to this path")
	noColor := flags.Bool("no-color", false, "Disable colored output")
	exitZero := flags.Bool("exit-zero", false, "Exit 0 even when checks fail")
	logLevel := flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := loadEnvFile(*envFile, *envFile != defaultEnvFile); err != nil {
		slog.Error("Failed to load env file", "path", *envFile, "error", err)
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 2
	}

	// Flags win over file and environment, but only when given explicitly.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.BackendURL = *backend
		case "frontend":
			cfg.FrontendURL = *frontend
		case "delay":
			cfg.Delay = *delay
		case "junit":
			cfg.Report.JUnitPath = *junitPath
		case "metrics-file":
			cfg.Report.MetricsPath = *metricsPath
		case "no-color":
			cfg.Report.NoColor = *noColor
		case "exit-zero":
			cfg.Report.ExitZero = *exitZero
		}
	})
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 2
	}

	tgt := target.New(cfg, stdout)
	console := reporter.NewConsole(stdout, cfg.Report.NoColor)
	console.PrintHeader(tgt, time.Now())

	runner := executor.NewRunner(checks.Standard(), tgt, cfg.Delay)
	result := runner.RunAll(ctx)
	console.PrintResult(result)

	code := 0
	if cfg.Report.JUnitPath != "" {
		if err := reporter.WriteJUnit(cfg.Report.JUnitPath, result, tgt); err != nil {
			slog.Error("Failed to write JUnit report", "error", err)
			code = 1
		}
	}
	if cfg.Report.MetricsPath != "" {
		if err := reporter.WriteMetrics(cfg.Report.MetricsPath, result); err != nil {
			slog.Error("Failed to write metrics", "error", err)
			code = 1
		}
	}

	if !result.Summary().AllPassed() && !cfg.Report.ExitZero {
		code = 1
	}
	return code
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing file is only an error when the
// caller asked for it explicitly.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
