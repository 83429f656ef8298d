// Package target defines the Target every check runs against. It holds the
// resolved base URLs, the shared HTTP client, request timeouts, request
// fixtures and the writer checks print their progress lines to.
package target

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"agriverify/pkg/config"
	"agriverify/pkg/fixtures"
	"agriverify/pkg/utils"
)

// Target is created once per run. It is not safe for concurrent use; checks
// run one after another.
type Target struct {
	RunID       string
	BackendURL  string
	FrontendURL string
	UserAgent   string

	Timeouts config.Timeouts
	Fixtures fixtures.Set

	Client *http.Client
	Out    io.Writer
}

// New builds a Target from cfg. Output goes to out, or stdout when out is nil.
func New(cfg *config.Config, out io.Writer) *Target {
	if out == nil {
		out = os.Stdout
	}
	return &Target{
		RunID:       uuid.NewString(),
		BackendURL:  strings.TrimRight(cfg.BackendURL, "/"),
		FrontendURL: cfg.FrontendURL,
		UserAgent:   cfg.UserAgent,
		Timeouts:    cfg.Timeouts,
		Fixtures:    cfg.Fixtures,
		Client:      utils.NewHTTPClient(longest(cfg.Timeouts) + 5*time.Second),
		Out:         out,
	}
}

// Backend joins path onto the backend base URL.
func (t *Target) Backend(path string) string {
	return t.BackendURL + "/" + strings.TrimLeft(path, "/")
}

// Printf writes one progress line to the target's output.
func (t *Target) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.Out, format+"\n", args...)
}

func longest(ts config.Timeouts) time.Duration {
	max := ts.Health
	for _, d := range []time.Duration{ts.Status, ts.Prediction, ts.LLM, ts.SoilData, ts.Frontend} {
		if d > max {
			max = d
		}
	}
	return max
}
