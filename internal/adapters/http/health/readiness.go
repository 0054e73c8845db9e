package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"gateguard/internal/adapters/http/response"
	"gateguard/internal/platform/health"
	"gateguard/internal/platform/logger"
)

const readinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
}

func NewReadinessHandler(version string, healthManager health.ManagerInterface) *ReadinessHandler {
	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
	}
}

// Check answers 503 when any component fails. Degraded components turn the
// overall status to warn but keep the instance in rotation.
func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	results := h.healthManager.CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := StatusPass
	checks := make(map[string][]CheckDetail, len(results))
	var notes []string
	now := time.Now()

	for _, name := range names {
		result := results[name]
		status := toStatus(result.Status)
		switch {
		case status == StatusFail:
			overall = StatusFail
			notes = append(notes, "Dependency "+name+" is unavailable")
		case status == StatusWarn && overall == StatusPass:
			overall = StatusWarn
		}

		detail := CheckDetail{
			ComponentId:   name,
			ComponentType: result.Component,
			ObservedValue: result.Value,
			ObservedUnit:  result.Unit,
			Status:        status,
			Time:          now,
			Output:        result.Message,
		}
		if detail.ComponentType == "" {
			detail.ComponentType = "dependency"
		}
		if result.Error != "" {
			detail.Output = result.Error
		}
		if result.Latency > 0 {
			detail.Latency = result.Latency.String()
		}
		checks[name] = []CheckDetail{detail}
	}

	statusCode := http.StatusOK
	if overall == StatusFail {
		statusCode = http.StatusServiceUnavailable
		logger.FromContext(ctx).Warn("Readiness check failed", logger.Strings("notes", notes))
	}

	response.RespondJSON(w, statusCode, ReadinessResponse{
		Status:  overall,
		Version: h.version,
		Checks:  checks,
		Notes:   notes,
	})
}

func toStatus(status health.Status) Status {
	switch status {
	case health.StatusHealthy:
		return StatusPass
	case health.StatusUnhealthy:
		return StatusFail
	default:
		return StatusWarn
	}
}
