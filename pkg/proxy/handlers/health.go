package handlers

import (
	"net/http"
	"time"

	"kineticmind/guidance/pkg/providers"
	"kineticmind/guidance/pkg/proxy"
)

// HealthStatus is the response body for the health endpoints.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Provider  string    `json:"provider,omitempty"`
}

// HealthHandler serves GET /health. It reports process liveness and always
// returns 200 while the server is running.
type HealthHandler struct{}

// NewHealthHandler creates a health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	proxy.WriteJSON(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// ReadinessHandler serves GET /ready. It reports 200 when the upstream
// provider is healthy and 503 otherwise, so load balancers can drain the
// instance while the upstream is failing.
type ReadinessHandler struct {
	provider providers.Provider
}

// NewReadinessHandler creates a readiness handler.
func NewReadinessHandler(provider providers.Provider) *ReadinessHandler {
	return &ReadinessHandler{provider: provider}
}

// ServeHTTP implements http.Handler.
func (h *ReadinessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Timestamp: time.Now().UTC(),
		Provider:  h.provider.GetName(),
	}

	if !h.provider.IsHealthy() {
		status.Status = "unavailable"
		proxy.WriteJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	status.Status = "ready"
	proxy.WriteJSON(w, http.StatusOK, status)
}
