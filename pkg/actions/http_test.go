package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriverify/pkg/config"
	"agriverify/pkg/target"
)

func newTarget(t *testing.T, backend string) *target.Target {
	t.Helper()
	cfg := config.Default()
	cfg.BackendURL = backend
	return target.New(cfg, nil)
}

func TestPostJSONSendsBodyAndHeaders(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotAgent  string
		gotBody   map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	tgt := newTarget(t, srv.URL)
	resp, err := PostJSON(context.Background(), tgt, tgt.Backend("/predict"), map[string]interface{}{"pH": 6.5}, time.Second)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "AgriCure-Integration-Test/1.0", gotAgent)
	assert.Equal(t, 6.5, gotBody["pH"])

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"ok": true}`, resp.Body)
	assert.Equal(t, srv.URL+"/predict", resp.URL)

	err = resp.Expect(http.StatusOK)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), "201")
}

func TestGetHonoursTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	tgt := newTarget(t, srv.URL)
	_, err := Get(context.Background(), tgt, tgt.Backend("/health"), 50*time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSendUnreachable(t *testing.T) {
	tgt := newTarget(t, "http://127.0.0.1:1")
	_, err := Get(context.Background(), tgt, tgt.Backend("/health"), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestDecodeJSON(t *testing.T) {
	doc, err := (&HTTPResponse{Body: `{"status": "healthy"}`}).DecodeJSON()
	require.NoError(t, err)
	assert.Equal(t, "healthy", doc["status"])

	_, err = (&HTTPResponse{Body: `<html></html>`}).DecodeJSON()
	assert.Error(t, err)

	_, err = (&HTTPResponse{Body: `null`}).DecodeJSON()
	assert.Error(t, err)

	_, err = (&HTTPResponse{Body: `["a", "b"]`}).DecodeJSON()
	assert.Error(t, err)
}
