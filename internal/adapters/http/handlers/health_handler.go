package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

const checkOK = "ok"

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	advisory map[string]bool
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithAdvisoryChecks names checks whose failure reports the service as
// degraded while keeping it ready. Checkout keeps working without the tax
// ID registry, so its check is advisory.
func WithAdvisoryChecks(names ...string) HealthOption {
	return func(h *HealthHandler) {
		for _, n := range names {
			h.advisory[n] = true
		}
	}
}

// NewHealthHandler returns a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{registry: registry, advisory: make(map[string]bool)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": checkOK})
}

// Readiness handles GET /health/ready: 503 when a required check fails,
// otherwise 200 with status "degraded" if an advisory check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := dto.ReadinessResponse{
		Status: dto.ReadinessReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = checkOK
			continue
		}
		resp.Checks[name] = err.Error()
		switch {
		case !h.advisory[name]:
			resp.Status = dto.ReadinessNotReady
		case resp.Status == dto.ReadinessReady:
			resp.Status = dto.ReadinessDegraded
		}
	}

	code := http.StatusOK
	if resp.Status == dto.ReadinessNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
