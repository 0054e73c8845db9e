package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessHandler_Check(t *testing.T) {
	handler := NewLivenessHandler("v1.2.3")
	handler.started = time.Now().Add(-90 * time.Second)
	w := httptest.NewRecorder()

	handler.Check(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, StatusPass, response.Status)
	assert.Equal(t, "v1.2.3", response.Version)
	assert.Equal(t, "1m30s", response.Uptime)
	assert.WithinDuration(t, time.Now(), response.Timestamp, 2*time.Second)
}

func TestLivenessHandler_Check_EmptyVersionOmitted(t *testing.T) {
	w := httptest.NewRecorder()

	NewLivenessHandler("").Check(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.NotContains(t, w.Body.String(), `"version"`)
}

func TestLivenessHandler_Check_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := httptest.NewRecorder()

	NewLivenessHandler("v1").Check(w, httptest.NewRequest(http.MethodGet, "/health/live", nil).WithContext(ctx))

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.JSONEq(t, `{"error":"context canceled"}`, w.Body.String())
}
