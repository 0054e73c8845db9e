package health

import (
	"net/http"
	"time"

	"gateguard/internal/adapters/http/response"
)

type LivenessHandler struct {
	version string
	started time.Time
}

func NewLivenessHandler(version string) *LivenessHandler {
	return &LivenessHandler{
		version: version,
		started: time.Now(),
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		response.RespondError(w, http.StatusRequestTimeout, err)
		return
	}

	now := time.Now()
	response.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:    StatusPass,
		Timestamp: now,
		Version:   h.version,
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
	})
}
