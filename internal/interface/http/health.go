package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH CHECKING
// ══════════════════════════════════════════════════════════════════════════════

// CheckFunc probes a single dependency.
type CheckFunc func(ctx context.Context) error

// HealthChecker reports the health of registered dependencies.
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// ComponentStatus describes the state of one dependency.
type ComponentStatus struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// HealthStatus is the aggregate health report.
type HealthStatus struct {
	Status     string            `json:"status"`
	Components []ComponentStatus `json:"components,omitempty"`
	CheckedAt  time.Time         `json:"checked_at"`
}

// Healthy returns true if every component passed its check.
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// CompositeHealthChecker runs registered checks with a per-check timeout.
type CompositeHealthChecker struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	timeout time.Duration
}

// NewCompositeHealthChecker creates an empty checker.
func NewCompositeHealthChecker(timeout time.Duration) *CompositeHealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CompositeHealthChecker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
	}
}

// AddCheck registers a named dependency check.
func (c *CompositeHealthChecker) AddCheck(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = fn
}

// Check runs all registered checks and aggregates the result.
func (c *CompositeHealthChecker) Check(ctx context.Context) HealthStatus {
	c.mu.RLock()
	names := make([]string, 0, len(c.checks))
	fns := make([]CheckFunc, 0, len(c.checks))
	for name, fn := range c.checks {
		names = append(names, name)
		fns = append(fns, fn)
	}
	c.mu.RUnlock()

	status := HealthStatus{
		Status:    "ok",
		CheckedAt: time.Now().UTC(),
	}

	for i, fn := range fns {
		checkCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := fn(checkCtx)
		cancel()

		comp := ComponentStatus{Name: names[i], Healthy: err == nil}
		if err != nil {
			comp.Error = err.Error()
			status.Status = "degraded"
		}
		status.Components = append(status.Components, comp)
	}

	return status
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleHealthcheck is the minimal liveness probe.
// GET /healthcheck
func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHealth reports the aggregate health of all dependencies.
// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker == nil {
		writeJSON(w, http.StatusOK, HealthStatus{Status: "ok", CheckedAt: time.Now().UTC()})
		return
	}

	status := s.deps.HealthChecker.Check(r.Context())
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// handleReady reports readiness to serve traffic.
// GET /ready
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	s.handleHealth(w, r)
}

// handleLive reports process liveness.
// GET /live
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// handleRoot describes the service.
// GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "alem-classroom book catalog",
		"version": "v1",
		"endpoints": []string{
			"GET /healthcheck",
			"GET /health",
			"POST /books/",
			"GET /books/",
			"GET /books/{id}",
			"PUT /books/{id}",
			"DELETE /books/{id}",
			"GET /books/search/",
		},
	})
}
