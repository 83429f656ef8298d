package checks

import (
	"fmt"
	"sync"
)

// Registry keeps checks in declaration order.
type Registry struct {
	mu     sync.RWMutex
	checks []Check
	names  map[string]struct{}
}

// NewRegistry creates a new empty check registry
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Register appends c. Names must be unique and every check needs a body.
func (r *Registry) Register(c Check) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.Name == "" {
		return fmt.Errorf("check is missing a name")
	}
	if c.Run == nil {
		return fmt.Errorf("check '%s' has no function", c.Name)
	}
	if _, exists := r.names[c.Name]; exists {
		return fmt.Errorf("check '%s' is already registered", c.Name)
	}

	r.names[c.Name] = struct{}{}
	r.checks = append(r.checks, c)
	return nil
}

// MustRegister adds a check to the registry, panicking if it fails
func (r *Registry) MustRegister(c Check) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Checks returns the registered checks in declaration order.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Check, len(r.checks))
	copy(out, r.checks)
	return out
}

// Len reports how many checks are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.checks)
}

// Standard returns the AgriCure verification suite.
func Standard() *Registry {
	r := NewRegistry()
	r.MustRegister(Check{Name: "Backend Health", Banner: "🔍 Testing Backend Health...", Run: BackendHealth})
	r.MustRegister(Check{Name: "ML Model Status", Banner: "🧠 Testing ML Model Status...", Run: ModelStatus})
	r.MustRegister(Check{Name: "Basic Prediction", Banner: "🌱 Testing Basic Prediction...", Run: BasicPrediction})
	r.MustRegister(Check{Name: "Enhanced Prediction", Banner: "🚀 Testing Enhanced Prediction...", Run: EnhancedPrediction})
	r.MustRegister(Check{Name: "LLM Enhancement", Banner: "🤖 Testing LLM-Enhanced Prediction...", Run: LLMEnhancedPrediction})
	r.MustRegister(Check{Name: "Soil Data Integration", Banner: "🌍 Testing Soil Data Integration...", Run: SoilDataIntegration})
	r.MustRegister(Check{Name: "Frontend Access", Banner: "🖥️ Testing Frontend Accessibility...", Run: FrontendReachable})
	return r
}
