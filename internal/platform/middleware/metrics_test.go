package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateguard/internal/platform/metrics"
)

func TestMetricsMiddleware_LabelsByRoutePattern(t *testing.T) {
	provider, err := metrics.NewProvider()
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(MetricsMiddleware(provider))
	router.Get("/api/schemas/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, name := range []string{"signup", "login"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schemas/"+name, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, `path="/api/schemas/{name}"`)
	assert.NotContains(t, body, `path="/api/schemas/signup"`)
}
