// Package checks defines the verification checks run against the AgriCure
// backend and frontend, and the ordered registry they are declared in.
// Every check sends one request and reduces everything that can go wrong to
// a failed Outcome; none of them return errors or panic on bad responses.
package checks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"agriverify/pkg/target"
	"agriverify/pkg/utils"
)

// Level selects the marker printed in front of an outcome line.
type Level int

const (
	LevelPass Level = iota
	LevelFail
	// LevelWarn is a failure for features the backend may legitimately not offer.
	LevelWarn
)

// Icon returns the marker for l.
func (l Level) Icon() string {
	switch l {
	case LevelPass:
		return "✅"
	case LevelWarn:
		return "⚠️"
	default:
		return "❌"
	}
}

// Outcome is what a single check run produced.
type Outcome struct {
	Passed  bool
	Level   Level
	Message string
	Details []string
	Err     error
}

// Func is the body of a check.
type Func func(ctx context.Context, t *target.Target) Outcome

// Check pairs a display name with its body.
type Check struct {
	Name   string
	Banner string
	Run    Func
}

// Run executes c once against t, printing its banner and outcome lines to
// t.Out. A panicking check is recorded as a failure.
func Run(ctx context.Context, c Check, t *target.Target) (out Outcome) {
	if c.Banner != "" {
		t.Printf("%s", c.Banner)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("check panicked: %v", r)
			out = failed(err, "%s Error: %v", c.Name, err)
		}
		printOutcome(t, out)
		slog.Debug("Check completed",
			"check", c.Name,
			"passed", out.Passed,
			"duration", time.Since(start),
			"error", out.Err)
	}()

	return c.Run(ctx, t)
}

func printOutcome(t *target.Target, o Outcome) {
	t.Printf("%s %s", o.Level.Icon(), o.Message)
	for _, d := range o.Details {
		t.Printf("   %s", d)
	}
}

func passed(format string, args ...interface{}) Outcome {
	return Outcome{Passed: true, Level: LevelPass, Message: fmt.Sprintf(format, args...)}
}

func failed(err error, format string, args ...interface{}) Outcome {
	return Outcome{Level: LevelFail, Message: fmt.Sprintf(format, args...), Err: err}
}

func warned(err error, format string, args ...interface{}) Outcome {
	return Outcome{Level: LevelWarn, Message: fmt.Sprintf(format, args...), Err: err}
}

func (o Outcome) withDetail(format string, args ...interface{}) Outcome {
	o.Details = append(o.Details, fmt.Sprintf(format, args...))
	return o
}

// preview keeps response bodies printed on failure to one screenful.
func preview(body string) string {
	return utils.Truncate(body, 500, "... [truncated]")
}
