package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gateguard/internal/platform/logger"
)

type entry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// recordingLogger keeps every entry, including those of derived loggers.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]entry
	fields  []logger.Field
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]entry{}}
}

func (l *recordingLogger) record(level, msg string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all := map[string]interface{}{}
	for _, f := range append(append([]logger.Field{}, l.fields...), fields...) {
		all[f.Key] = f.Value
	}
	*l.entries = append(*l.entries, entry{level: level, msg: msg, fields: all})
}

func (l *recordingLogger) Info(msg string, fields ...logger.Field)  { l.record("info", msg, fields) }
func (l *recordingLogger) Error(msg string, fields ...logger.Field) { l.record("error", msg, fields) }
func (l *recordingLogger) Debug(msg string, fields ...logger.Field) { l.record("debug", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields ...logger.Field)  { l.record("warn", msg, fields) }

func (l *recordingLogger) With(fields ...logger.Field) logger.Logger {
	return &recordingLogger{mu: l.mu, entries: l.entries, fields: append(append([]logger.Field{}, l.fields...), fields...)}
}

func (l *recordingLogger) all() []entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]entry{}, *l.entries...)
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel string
	}{
		{name: "success", status: http.StatusOK, expectedLevel: "info"},
		{name: "invalid payload", status: http.StatusUnprocessableEntity, expectedLevel: "warn"},
		{name: "server error", status: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := newRecordingLogger()

			router := chi.NewRouter()
			router.Use(chiMiddleware.RequestID)
			router.Use(RequestLogger(log))
			router.Post("/api/schemas/{name}/validate", func(w http.ResponseWriter, r *http.Request) {
				logger.FromContext(r.Context()).Debug("inside handler")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("{}"))
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/schemas/signup/validate", nil))

			entries := log.all()
			require.Len(t, entries, 2)

			assert.Equal(t, "inside handler", entries[0].msg)
			assert.NotEmpty(t, entries[0].fields["request_id"])

			access := entries[1]
			assert.Equal(t, tt.expectedLevel, access.level)
			assert.Equal(t, "HTTP Request", access.msg)
			assert.Equal(t, tt.status, access.fields["status"])
			assert.Equal(t, "/api/schemas/{name}/validate", access.fields["route"])
			assert.Equal(t, "signup", access.fields["schema"])
			assert.Equal(t, 2, access.fields["bytes"])
		})
	}
}

func TestRequestLogger_NoSchemaParam(t *testing.T) {
	log := newRecordingLogger()
	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))

	entries := log.all()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].fields, "schema")
	assert.Equal(t, "/health/live", entries[0].fields["route"])
}

func TestRecovery_RespondsWithJSON(t *testing.T) {
	log := newRecordingLogger()
	handler := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()

	assert.NotPanics(t, func() { handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "close", w.Header().Get("Connection"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	entries := log.all()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].fields["panic"])
}

func TestRecovery_AfterHeadersWritten(t *testing.T) {
	handler := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("late")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRecovery_RepanicsOnAbort(t *testing.T) {
	handler := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
