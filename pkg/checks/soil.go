package checks

import (
	"context"
	"net/http"

	"agriverify/pkg/actions"
	"agriverify/pkg/extractors"
	"agriverify/pkg/target"
)

// SoilDataIntegration looks up the soil type at the configured coordinates.
// confidence is a 0..1 ratio and is printed as a percentage.
func SoilDataIntegration(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.PostJSON(ctx, t, t.Backend("/soil-data"), t.Fixtures.Location, t.Timeouts.SoilData)
	if err != nil {
		return failed(err, "Soil Data Integration Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Soil Data Integration Failed: %d", resp.StatusCode)
	}
	doc, err := resp.DecodeJSON()
	if err != nil {
		return failed(err, "Soil Data Integration Error: %v", err)
	}

	soilType, _, err := extractors.String(doc, "soil_type", "Unknown")
	if err != nil {
		return failed(err, "Soil Data Integration Error: %v", err)
	}
	confidence, _, err := extractors.Float(doc, "confidence", 0)
	if err != nil {
		return failed(err, "Soil Data Integration Error: %v", err)
	}
	return passed("Soil Data: %s (%.1f%% confidence)", soilType, confidence*100)
}
