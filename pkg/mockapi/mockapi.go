// Package mockapi serves a fake AgriCure backend and frontend. Tests point the
// runner at it through httptest, and examples/mock_backend serves it on a real
// port. Any endpoint can be forced to answer with a different status or body.
package mockapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

// DefaultTitle is the <title> of the fake frontend page.
const DefaultTitle = "AgriCure - Smart Farming with AI"

// Override replaces the normal answer of one endpoint.
type Override struct {
	Status      int
	Body        string
	ContentType string
}

// Backend is a fake prediction API. The zero value is not usable; use NewBackend.
type Backend struct {
	mu        sync.Mutex
	overrides map[string]Override
	calls     map[string]int
	router    *mux.Router
}

// NewBackend returns a backend where every endpoint is healthy.
func NewBackend() *Backend {
	b := &Backend{
		overrides: make(map[string]Override),
		calls:     make(map[string]int),
	}

	r := mux.NewRouter()
	r.Use(b.record)
	r.HandleFunc("/health", b.health).Methods(http.MethodGet)
	r.HandleFunc("/status", b.status).Methods(http.MethodGet)
	r.HandleFunc("/predict", b.predict).Methods(http.MethodPost)
	r.HandleFunc("/predict-enhanced", b.predictEnhanced).Methods(http.MethodPost)
	r.HandleFunc("/predict-llm-enhanced", b.predictLLM).Methods(http.MethodPost)
	r.HandleFunc("/soil-data", b.soilData).Methods(http.MethodPost)
	b.router = r

	return b
}

// ServeHTTP implements http.Handler.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

// Fail makes path answer with status and a FastAPI-style error body.
func (b *Backend) Fail(path string, status int) {
	b.Respond(path, Override{
		Status:      status,
		Body:        fmt.Sprintf(`{"detail": %q}`, http.StatusText(status)),
		ContentType: "application/json",
	})
}

// Respond makes path answer with o instead of its normal response.
func (b *Backend) Respond(path string, o Override) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.overrides[path] = o
}

// Calls returns how many requests path has received.
func (b *Backend) Calls(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.URL.Path]++
		o, overridden := b.overrides[r.URL.Path]
		b.mu.Unlock()

		if !overridden {
			next.ServeHTTP(w, r)
			return
		}
		if o.ContentType != "" {
			w.Header().Set("Content-Type", o.ContentType)
		}
		if o.Status == 0 {
			o.Status = http.StatusOK
		}
		w.WriteHeader(o.Status)
		_, _ = io.WriteString(w, o.Body)
	})
}

func (b *Backend) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "AgriCure ML API",
	})
}

func (b *Backend) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"service":      "AgriCure ML API",
		"model_loaded": true,
		"model_type":   "RandomForest Ensemble",
	})
}

func (b *Backend) predict(w http.ResponseWriter, r *http.Request) {
	if !requireFields(w, r, "Soil_Type", "Crop_Type", "Nitrogen", "Potassium", "Phosphorous") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"fertilizer": "Urea",
		"confidence": 87.5,
		"prediction_info": map[string]interface{}{
			"model_type": "RandomForest Ensemble",
		},
	})
}

func (b *Backend) predictEnhanced(w http.ResponseWriter, r *http.Request) {
	if !requireFields(w, r, "Soil_Type", "Crop_Type", "pH") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"predictions": map[string]interface{}{
			"N_Status":             "Low",
			"P_Status":             "Optimal",
			"K_Status":             "Optimal",
			"Primary_Fertilizer":   "Urea",
			"Secondary_Fertilizer": "DAP",
			"pH_Amendment":         "None",
		},
	})
}

func (b *Backend) predictLLM(w http.ResponseWriter, r *http.Request) {
	if !requireFields(w, r, "Sowing_Date", "Field_Size", "Field_Unit", "Bulk_Density_g_cm3", "Sampling_Depth_cm") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"primary_fertilizer": map[string]interface{}{
			"name":      "Urea",
			"amount_kg": 120,
		},
		"cost_estimate": map[string]interface{}{
			"total": "₹4,520",
		},
	})
}

func (b *Backend) soilData(w http.ResponseWriter, r *http.Request) {
	if !requireFields(w, r, "latitude", "longitude") {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"soil_type":  "Alluvial",
		"confidence": 0.82,
	})
}

// requireFields decodes the JSON body and answers 422 when a key is missing.
func requireFields(w http.ResponseWriter, r *http.Request, keys ...string) bool {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "invalid JSON body"})
		return false
	}
	for _, k := range keys {
		if _, ok := body[k]; !ok {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "missing field " + k})
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Frontend returns a handler serving a single-page app shell titled title.
func Frontend(title string) http.Handler {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <title>%s</title>
</head>
<body>
    <div id="root"></div>
</body>
</html>`, title)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	})
}
