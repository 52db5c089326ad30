// Package http holds the shared HTTP plumbing of the API: middleware, the
// health and readiness handlers and HTTP metrics. Resource handlers live in
// the news, weather, poetry and wallpaper subpackages.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"newsboard/internal/infra/probe"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`            // "healthy", "degraded", "ready" or "not_ready"
	Timestamp string                 `json:"timestamp"`         // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`            // Status of each check item
	Version   string                 `json:"version,omitempty"` // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// BreakerReporter exposes upstream circuit breaker states by provider.
type BreakerReporter interface {
	BreakerStates() map[string]string
}

// ProbeReporter exposes the latest upstream reachability results.
type ProbeReporter interface {
	Snapshot() []probe.Status
}

// HealthHandler is the liveness endpoint. It always answers 200 while the
// process can serve; open breakers only mark the response as degraded.
type HealthHandler struct {
	Version     string
	Breakers    BreakerReporter // optional
	RateLimiter *RateLimiter    // optional
}

// ServeHTTP reports version, breaker states and limiter occupancy.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	status := "healthy"

	if h.Breakers != nil {
		check := checkBreakers(h.Breakers.BreakerStates())
		checks["upstream_breakers"] = check
		if check.Status != "healthy" {
			status = "degraded"
		}
	}

	if h.RateLimiter != nil {
		checks["rate_limiter"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]interface{}{"active_clients": h.RateLimiter.ActiveClients()},
		}
	}

	writeHealth(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func checkBreakers(states map[string]string) CheckStatus {
	details := make(map[string]interface{}, len(states))
	open := 0
	for name, state := range states {
		details[name] = state
		if state != "closed" {
			open++
		}
	}

	if open > 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "one or more upstream circuits are not closed",
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler is the readiness endpoint. It answers 503 until every upstream
// has been probed and while any of them is unreachable. Without a probe it
// is always ready.
type ReadyHandler struct {
	Probe ProbeReporter // optional
}

// ServeHTTP reports the last probe result per upstream.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	ready := true

	if h.Probe != nil {
		for _, st := range h.Probe.Snapshot() {
			check := CheckStatus{Status: "healthy"}
			switch {
			case !st.Checked:
				check = CheckStatus{Status: "unhealthy", Message: "not checked yet"}
				ready = false
			case !st.Up:
				check = CheckStatus{Status: "unhealthy", Message: st.Error}
				ready = false
			}
			if st.Checked {
				check.Details = map[string]interface{}{
					"status_code":  st.StatusCode,
					"latency_ms":   st.Latency.Milliseconds(),
					"last_checked": st.LastChecked.UTC().Format(time.RFC3339),
				}
			}
			checks[st.Name] = check
		}
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	writeHealth(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

func writeHealth(w http.ResponseWriter, code int, resp HealthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("health: failed to encode response", slog.Any("error", err))
	}
}
