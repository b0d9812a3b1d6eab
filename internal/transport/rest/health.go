// Package rest serves the plain HTTP endpoints that sit next to /graphql:
// liveness, readiness and the detailed health report.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const defaultCheckTimeout = 3 * time.Second

// Pinger is a dependency whose reachability is part of readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	log     *slog.Logger
	checks  map[string]Pinger
	version string
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. checks maps a component name
// (e.g. "mongodb") to its pinger.
func NewHealthHandler(log *slog.Logger, version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		log:     log.With("handler", "health"),
		checks:  checks,
		version: version,
		timeout: defaultCheckTimeout,
	}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when every component answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.checkAll(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is Ready plus per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.checkAll(r.Context())
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkAll(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := "ok"
	components := make(map[string]CompStatus, len(names))
	for _, name := range names {
		start := time.Now()
		err := h.checks[name].Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			h.log.WarnContext(ctx, "health check failed",
				slog.String("component", name),
				slog.String("error", err.Error()),
			)
			components[name] = CompStatus{Status: "down", Error: err.Error()}
			overall = "down"
			continue
		}
		components[name] = CompStatus{Status: "ok", Latency: latency.String()}
	}
	return overall, components
}

func httpStatus(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
