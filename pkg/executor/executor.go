// Package executor runs a verification suite. It invokes every registered
// check exactly once, in declaration order, with a pause between checks,
// and condenses the outcomes into a Summary.
package executor

import (
	"context"
	"log/slog"
	"time"

	"agriverify/pkg/checks"
	"agriverify/pkg/target"
)

// CheckResult is the outcome of one check in one run.
type CheckResult struct {
	Name      string
	Passed    bool
	Message   string
	Error     error
	StartTime time.Time
	Duration  time.Duration
}

// ExecutionResult represents the outcome of a whole run.
type ExecutionResult struct {
	RunID     string
	StartTime time.Time
	EndTime   time.Time
	Results   []CheckResult
}

// Duration is the wall time of the run.
func (r *ExecutionResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary counts r's results.
func (r *ExecutionResult) Summary() Summary {
	return Summarize(r.Results)
}

// Runner executes checks against a target.
type Runner struct {
	Checks []checks.Check
	Target *target.Target
	// Delay is the pause between two consecutive checks. Zero disables it.
	Delay time.Duration

	sleep func(ctx context.Context, d time.Duration)
}

// NewRunner builds a Runner over the checks registered in reg.
func NewRunner(reg *checks.Registry, t *target.Target, delay time.Duration) *Runner {
	return &Runner{
		Checks: reg.Checks(),
		Target: t,
		Delay:  delay,
		sleep:  sleepContext,
	}
}

// RunAll invokes every check once and returns their results in order.
// It never fails: a cancelled ctx only makes the remaining checks fail fast.
func (r *Runner) RunAll(ctx context.Context) *ExecutionResult {
	result := &ExecutionResult{
		RunID:     r.Target.RunID,
		StartTime: time.Now(),
		Results:   make([]CheckResult, 0, len(r.Checks)),
	}

	slog.Info("Starting verification run",
		"run_id", r.Target.RunID,
		"checks", len(r.Checks),
		"backend", r.Target.BackendURL,
		"frontend", r.Target.FrontendURL)

	for i, c := range r.Checks {
		if i > 0 {
			r.pause(ctx)
			r.Target.Printf("")
		}
		result.Results = append(result.Results, r.runCheck(ctx, c))
	}

	result.EndTime = time.Now()
	summary := result.Summary()
	slog.Info("Verification run finished",
		"run_id", r.Target.RunID,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"duration", result.Duration())

	return result
}

func (r *Runner) runCheck(ctx context.Context, c checks.Check) CheckResult {
	start := time.Now()
	outcome := checks.Run(ctx, c, r.Target)

	res := CheckResult{
		Name:      c.Name,
		Passed:    outcome.Passed,
		Message:   outcome.Message,
		Error:     outcome.Err,
		StartTime: start,
		Duration:  time.Since(start),
	}
	if !res.Passed {
		slog.Warn("Check failed", "check", c.Name, "error", res.Error)
	}
	return res
}

func (r *Runner) pause(ctx context.Context) {
	if r.Delay <= 0 {
		return
	}
	sleep := r.sleep
	if sleep == nil {
		sleep = sleepContext
	}
	sleep(ctx, r.Delay)
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
