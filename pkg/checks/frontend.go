package checks

import (
	"context"
	"log/slog"
	"net/http"

	"agriverify/pkg/actions"
	"agriverify/pkg/extractors"
	"agriverify/pkg/target"
)

// FrontendReachable fetches the frontend root. Any 200 passes; the page title
// is appended to the success line when the body is HTML with a <title>.
func FrontendReachable(ctx context.Context, t *target.Target) Outcome {
	resp, err := actions.Get(ctx, t, t.FrontendURL, t.Timeouts.Frontend)
	if err != nil {
		return failed(err, "Frontend Error: %v", err)
	}
	if err := resp.Expect(http.StatusOK); err != nil {
		return failed(err, "Frontend: Not accessible (%d)", resp.StatusCode)
	}

	title, err := extractors.PageTitle(resp.Body)
	if err != nil {
		slog.Debug("Frontend page is not parseable HTML", "error", err)
	}
	if title != "" {
		return passed("Frontend: Accessible at %s (%s)", t.FrontendURL, title)
	}
	return passed("Frontend: Accessible at %s", t.FrontendURL)
}
