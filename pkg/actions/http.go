// Package actions implements the request side of a check.
// This file contains the HTTP request action: it builds a GET or JSON POST
// against the target, bounds it with a deadline and captures the response.
package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"agriverify/pkg/target"
	"agriverify/pkg/utils"
)

// ErrUnexpectedStatus is wrapped by HTTPResponse.Expect when the status code differs.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Request describes one call made by a check.
type Request struct {
	Method  string
	URL     string
	Body    interface{} // marshalled as JSON when non-nil
	Timeout time.Duration
}

// HTTPResponse represents the result of an HTTP request
type HTTPResponse struct {
	StatusCode    int                 `json:"status_code"`
	Headers       map[string][]string `json:"headers"`
	Body          string              `json:"body"`
	ResponseTime  float64             `json:"response_time_ms"`
	ContentLength int64               `json:"content_length"`
	URL           string              `json:"url"`
}

// Send executes req through the target's client. A non-2xx status is not an
// error here; transport failures, deadline expiry and body read failures are.
func Send(ctx context.Context, t *target.Target, req *Request) (*HTTPResponse, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	httpReq, err := buildHTTPRequest(ctx, t, req)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}

	logHTTPRequest(httpReq, req)

	startTime := time.Now()
	resp, err := t.Client.Do(httpReq)
	elapsedMs := float64(time.Since(startTime).Microseconds()) / 1000.0
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	httpResp, err := processHTTPResponse(resp, elapsedMs)
	if err != nil {
		return nil, fmt.Errorf("failed to process HTTP response: %w", err)
	}
	return httpResp, nil
}

// Get is shorthand for a bodiless GET.
func Get(ctx context.Context, t *target.Target, url string, timeout time.Duration) (*HTTPResponse, error) {
	return Send(ctx, t, &Request{Method: http.MethodGet, URL: url, Timeout: timeout})
}

// PostJSON is shorthand for a POST carrying body as JSON.
func PostJSON(ctx context.Context, t *target.Target, url string, body interface{}, timeout time.Duration) (*HTTPResponse, error) {
	return Send(ctx, t, &Request{Method: http.MethodPost, URL: url, Body: body, Timeout: timeout})
}

// Expect returns an error wrapping ErrUnexpectedStatus unless the status is code.
func (r *HTTPResponse) Expect(code int) error {
	if r.StatusCode != code {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, r.StatusCode)
	}
	return nil
}

// DecodeJSON parses the body as a JSON object.
func (r *HTTPResponse) DecodeJSON() (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(r.Body), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response body as JSON: %w", err)
	}
	if doc == nil {
		return nil, errors.New("response body is not a JSON object")
	}
	return doc, nil
}

// buildHTTPRequest constructs an HTTP request from action parameters
func buildHTTPRequest(ctx context.Context, t *target.Target, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if t.UserAgent != "" {
		httpReq.Header.Set("User-Agent", t.UserAgent)
	}
	httpReq.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	return httpReq, nil
}

// processHTTPResponse converts an HTTP response to our internal representation
func processHTTPResponse(resp *http.Response, elapsedMs float64) (*HTTPResponse, error) {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	httpResp := &HTTPResponse{
		StatusCode:    resp.StatusCode,
		Headers:       resp.Header,
		Body:          string(bodyBytes),
		ResponseTime:  elapsedMs,
		ContentLength: resp.ContentLength,
		URL:           resp.Request.URL.String(),
	}

	logHTTPResponse(httpResp)

	return httpResp, nil
}

// logHTTPRequest logs an HTTP request at debug level
func logHTTPRequest(httpReq *http.Request, req *Request) {
	slog.Debug("HTTP Request",
		"method", httpReq.Method,
		"url", httpReq.URL.String(),
		"timeout", req.Timeout,
		"has_body", req.Body != nil,
	)
}

// logHTTPResponse logs an HTTP response at debug level
func logHTTPResponse(resp *HTTPResponse) {
	bodyPreview := utils.Truncate(resp.Body, 500, "... [truncated]")

	slog.Debug("HTTP response details",
		"status_code", resp.StatusCode,
		"content_length", resp.ContentLength,
		"response_time_ms", resp.ResponseTime,
		"body_preview", bodyPreview,
	)
}
