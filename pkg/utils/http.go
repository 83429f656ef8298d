// Package utils provides common utility functions used across the verification runner.
// This file builds the shared HTTP client every check sends its request through.
package utils

import (
	"fmt"
	"net/http"
	"time"
)

// maxRedirects caps how many hops the frontend check follows before failing.
const maxRedirects = 10

// NewHTTPClient returns the client used for a whole run. Per-request deadlines
// come from the caller's context; ceiling only guards against a check that
// forgets to set one.
func NewHTTPClient(ceiling time.Duration) *http.Client {
	return &http.Client{
		Timeout: ceiling,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
