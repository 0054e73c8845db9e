package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"gateguard/internal/adapters/http/health"
	"gateguard/internal/adapters/http/schema"
	schemaMocks "gateguard/internal/adapters/http/schema/mocks"
	"gateguard/internal/config"
	"gateguard/internal/core/domain/definition"
	platformHealth "gateguard/internal/platform/health"
	healthMocks "gateguard/internal/platform/health/mocks"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/metrics"
)

type RouterTestSuite struct {
	suite.Suite
	config        *config.HttpConfig
	healthManager *healthMocks.MockManagerInterface
	manager       *schemaMocks.MockManager
	router        http.Handler
}

func testHttpConfig() *config.HttpConfig {
	return &config.HttpConfig{
		MaxBodyBytes: 1024,
		RateLimit: config.RateLimitConfig{
			GlobalRequests: 1000,
			GlobalWindow:   60,
			RequestsPerIP:  100,
			WindowSeconds:  60,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         86400,
		},
	}
}

func (s *RouterTestSuite) SetupTest() {
	s.config = testHttpConfig()
	s.healthManager = healthMocks.NewMockManagerInterface(s.T())
	s.manager = schemaMocks.NewMockManager(s.T())
	s.router = s.newRouter(s.config)
}

func (s *RouterTestSuite) newRouter(cfg *config.HttpConfig) http.Handler {
	provider, err := metrics.NewProvider()
	s.Require().NoError(err)

	return NewRouter(RouterDependencies{
		Config:           cfg,
		Logger:           logger.NewNop(),
		SchemaHandler:    schema.NewHandler(s.manager),
		LivenessHandler:  health.NewLivenessHandler("1.0.0"),
		ReadinessHandler: health.NewReadinessHandler("1.0.0", s.healthManager),
		MetricsProvider:  provider,
	})
}

func (s *RouterTestSuite) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) TestHealthEndpoints() {
	s.healthManager.EXPECT().CheckAll(mock.Anything).Return(map[string]platformHealth.CheckResult{
		"schema_registry": {Status: platformHealth.StatusHealthy},
	}).Once()

	live := s.do(http.MethodGet, "/health/live", "")
	s.Assert().Equal(http.StatusOK, live.Code)
	s.Assert().Contains(live.Body.String(), `"status":"pass"`)

	ready := s.do(http.MethodGet, "/health/ready", "")
	s.Assert().Equal(http.StatusOK, ready.Code)

	s.Assert().Equal(http.StatusOK, s.do(http.MethodGet, "/health/live/", "").Code, "trailing slash is stripped")
}

func (s *RouterTestSuite) TestReadinessFailure() {
	s.healthManager.EXPECT().CheckAll(mock.Anything).Return(map[string]platformHealth.CheckResult{
		"postgres": {Status: platformHealth.StatusUnhealthy, Error: "connection refused"},
	}).Once()

	w := s.do(http.MethodGet, "/health/ready", "")

	s.Assert().Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	w := s.do(http.MethodGet, "/metrics", "")

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Contains(w.Header().Get("Content-Type"), "text/plain")
}

func (s *RouterTestSuite) TestSchemaRoutes() {
	signup := &definition.Definition{
		Name:   "signup",
		Fields: []definition.FieldDefinition{{Name: "username", Type: definition.TypeSlug}},
	}

	s.manager.EXPECT().ListDefinitions(mock.Anything).Return([]*definition.Definition{signup}, nil).Once()
	s.manager.EXPECT().GetDefinition(mock.Anything, "signup").Return(signup, nil).Once()
	s.manager.EXPECT().RegisterDefinition(mock.Anything, mock.Anything).Return(signup, nil).Once()
	s.manager.EXPECT().ReplaceDefinition(mock.Anything, mock.Anything).Return(signup, nil).Once()
	s.manager.EXPECT().DeleteDefinition(mock.Anything, "signup").Return(nil).Once()
	s.manager.EXPECT().
		Validate(mock.Anything, "signup", mock.Anything, (*bool)(nil)).
		Return(map[string]any{"username": "milli"}, nil).
		Once()

	definitionJSON := `{"name":"signup","fields":[{"name":"username","type":"slug"}]}`
	tests := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodGet, "/api/schemas", "", http.StatusOK},
		{http.MethodGet, "/api/schemas/signup", "", http.StatusOK},
		{http.MethodPost, "/api/schemas", definitionJSON, http.StatusCreated},
		{http.MethodPut, "/api/schemas/signup", definitionJSON, http.StatusOK},
		{http.MethodPost, "/api/schemas/signup/validate", `{"username":"milli"}`, http.StatusOK},
		{http.MethodDelete, "/api/schemas/signup", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		s.Run(tt.method+" "+tt.path, func() {
			w := s.do(tt.method, tt.path, tt.body)

			s.Assert().Equal(tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestJSONErrorsForUnknownRoutes() {
	tests := []struct {
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{http.MethodGet, "/api/nonexistent", http.StatusNotFound, `{"error":"route not found"}`},
		{http.MethodGet, "/", http.StatusNotFound, `{"error":"route not found"}`},
		{http.MethodPatch, "/api/schemas/signup", http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
		{http.MethodPost, "/health/live", http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
	}

	for _, tt := range tests {
		s.Run(tt.method+" "+tt.path, func() {
			w := s.do(tt.method, tt.path, "")

			s.Assert().Equal(tt.expectedStatus, w.Code)
			s.Assert().JSONEq(tt.expectedBody, w.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestRejectsNonJSONBodies() {
	req := httptest.NewRequest(http.MethodPost, "/api/schemas/signup/validate", strings.NewReader("username=milli"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	s.router.ServeHTTP(w, req)

	s.Assert().Equal(http.StatusUnsupportedMediaType, w.Code)
}

func (s *RouterTestSuite) TestRequestBodyLimit() {
	body := `{"username":"` + strings.Repeat("x", 2048) + `"}`

	w := s.do(http.MethodPost, "/api/schemas/signup/validate", body)

	s.Assert().Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.Assert().JSONEq(`{"error":"Request body too large"}`, w.Body.String())
}

func (s *RouterTestSuite) TestCORSPreflight() {
	w := s.do(http.MethodOptions, "/api/schemas", "",
		"Origin", "https://example.com",
		"Access-Control-Request-Method", "POST",
		"Access-Control-Request-Headers", "Content-Type",
	)

	s.Assert().Equal(http.StatusOK, w.Code)
	s.Assert().Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.Assert().Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func (s *RouterTestSuite) TestRequestIDHeaderIsAccepted() {
	s.manager.EXPECT().ListDefinitions(mock.Anything).Return([]*definition.Definition{}, nil).Once()

	w := s.do(http.MethodGet, "/api/schemas", "", "X-Request-Id", "req-123")

	s.Assert().Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestRateLimitPerIP() {
	cfg := testHttpConfig()
	cfg.RateLimit.RequestsPerIP = 2
	s.router = s.newRouter(cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, s.do(http.MethodGet, "/health/live", "", "X-Real-IP", "203.0.113.7").Code)
	}

	s.Assert().Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func BenchmarkRouter_Liveness(b *testing.B) {
	provider, _ := metrics.NewProvider()
	router := NewRouter(RouterDependencies{
		Config:           testHttpConfig(),
		Logger:           logger.NewNop(),
		SchemaHandler:    schema.NewHandler(schemaMocks.NewMockManager(b)),
		LivenessHandler:  health.NewLivenessHandler("1.0.0"),
		ReadinessHandler: health.NewReadinessHandler("1.0.0", healthMocks.NewMockManagerInterface(b)),
		MetricsProvider:  provider,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	}
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
