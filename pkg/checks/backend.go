package checks

import (
	"context"
	"errors"
	"net/http"

	"agriverify/pkg/actions"
	"agriverify/pkg/extractors"
	"agriverify/pkg/target"
)

// errModelNotLoaded marks a /status response that reports no model.
var errModelNotLoaded = errors.New("model not loaded")

// BackendHealth calls GET /health. Any 200 with a JSON object passes; the
// reported status is informational.
func BackendHealth(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.Get(ctx, t, t.Backend("/health"), t.Timeouts.Health)
	if err != nil {
		return failed(err, "Backend Health Check Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Backend Health Check Failed: %d", resp.StatusCode)
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return failed(err, "Backend Health Check Error: %v", err)
	}

	status, _, err := extractors.String(doc, "status", "unknown")
	if err != nil {
		return failed(err, "Backend Health Check Error: %v", err)
	}
	return passed("Backend Health: %s", status)
}

// ModelStatus calls GET /status and requires model_loaded to be true.
func ModelStatus(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.Get(ctx, t, t.Backend("/status"), t.Timeouts.Status)
	if err != nil {
		return failed(err, "Model Status Check Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Model Status Check Failed: %d", resp.StatusCode)
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return failed(err, "Model Status Check Error: %v", err)
	}

	loaded, _, err := extractors.Bool(doc, "model_loaded", false)
	if err != nil {
		return failed(err, "Model Status Check Error: %v", err)
	}
	if !loaded {
		return warned(errModelNotLoaded, "ML Model: Not Loaded")
	}
	modelType, _, err := extractors.String(doc, "model_type", "Unknown")
	if err != nil {
		return failed(err, "Model Status Check Error: %v", err)
	}
	return passed("ML Model: %s - Loaded", modelType)
}
