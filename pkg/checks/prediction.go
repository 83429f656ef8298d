package checks

import (
	"context"
	"net/http"

	"agriverify/pkg/actions"
	"agriverify/pkg/extractors"
	"agriverify/pkg/target"
)

// BasicPrediction posts the soil sample to /predict.
func BasicPrediction(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.PostJSON(ctx, t, t.Backend("/predict"), t.Fixtures.Sample, t.Timeouts.Prediction)
	if err != nil {
		return failed(err, "Basic Prediction Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Basic Prediction Failed: %d", resp.StatusCode).
			withDetail("Response: %s", preview(resp.Body))
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return failed(err, "Basic Prediction Error: %v", err)
	}

	fertilizer, _, err := extractors.String(doc, "fertilizer", "Unknown")
	if err != nil {
		return failed(err, "Basic Prediction Error: %v", err)
	}
	confidence, _, err := extractors.Float(doc, "confidence", 0)
	if err != nil {
		return failed(err, "Basic Prediction Error: %v", err)
	}
	return passed("Basic Prediction: %s (%.2f%% confidence)", fertilizer, confidence)
}

// EnhancedPrediction posts the soil sample to /predict-enhanced.
func EnhancedPrediction(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.PostJSON(ctx, t, t.Backend("/predict-enhanced"), t.Fixtures.Sample, t.Timeouts.Prediction)
	if err != nil {
		return failed(err, "Enhanced Prediction Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Enhanced Prediction Failed: %d", resp.StatusCode).
			withDetail("Response: %s", preview(resp.Body))
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return failed(err, "Enhanced Prediction Error: %v", err)
	}

	primary, _, err := extractors.String(doc, "predictions.Primary_Fertilizer", "Unknown")
	if err != nil {
		return failed(err, "Enhanced Prediction Error: %v", err)
	}
	secondary, _, err := extractors.String(doc, "predictions.Secondary_Fertilizer", "Unknown")
	if err != nil {
		return failed(err, "Enhanced Prediction Error: %v", err)
	}
	return passed("Enhanced Prediction - Primary: %s, Secondary: %s", primary, secondary)
}

// LLMEnhancedPrediction posts the extended sample to /predict-llm-enhanced.
// The endpoint is optional on older backends, so failures are warnings.
func LLMEnhancedPrediction(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.PostJSON(ctx, t, t.Backend("/predict-llm-enhanced"), t.Fixtures.Extended, t.Timeouts.LLM)
	if err != nil {
		return warned(err, "LLM Enhancement: Not available - %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return warned(err, "LLM Enhancement: Not available (%d)", resp.StatusCode)
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return warned(err, "LLM Enhancement: Not available - %v", err)
	}

	name, _, err := extractors.String(doc, "primary_fertilizer.name", "Unknown")
	if err != nil {
		return warned(err, "LLM Enhancement: Not available - %v", err)
	}
	total, _, err := extractors.String(doc, "cost_estimate.total", "₹0")
	if err != nil {
		return warned(err, "LLM Enhancement: Not available - %v", err)
	}
	return passed("LLM Enhanced: %s, Cost: %s", name, total)
}
