package config

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

var httpEnvVars = append([]string{
	"HTTP_MAX_BODY_BYTES",
	"HTTP_SERVER_HOST", "HTTP_SERVER_PORT", "HOST", "PORT",
	"HTTP_SERVER_READ_TIMEOUT", "HTTP_SERVER_WRITE_TIMEOUT", "HTTP_SERVER_IDLE_TIMEOUT",
	"HTTP_SERVER_READ_HEADER_TIMEOUT", "HTTP_SERVER_SHUTDOWN_TIMEOUT",
	"RATE_LIMIT_GLOBAL_REQUESTS", "RATE_LIMIT_GLOBAL_WINDOW",
	"RATE_LIMIT_REQUESTS_PER_IP", "RATE_LIMIT_WINDOW_SECONDS",
	"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS",
	"CORS_EXPOSED_HEADERS", "CORS_ALLOW_CREDENTIALS", "CORS_MAX_AGE",
}, baseEnvVars...)

type HttpConfigTestSuite struct {
	suite.Suite
}

func (s *HttpConfigTestSuite) SetupTest() {
	clearEnv(s.T(), httpEnvVars...)
}

func (s *HttpConfigTestSuite) TestLoadHttp_DefaultValues() {
	cfg, err := LoadHttp()

	s.Require().NoError(err)
	s.Assert().Equal(int64(1<<20), cfg.MaxBodyBytes)
	s.Assert().Equal(HttpServerConfig{
		Host:              "0.0.0.0",
		Port:              8080,
		ReadTimeout:       30,
		WriteTimeout:      30,
		IdleTimeout:       120,
		ReadHeaderTimeout: 10,
		ShutdownTimeout:   30,
	}, cfg.Server)
	s.Assert().Equal(RateLimitConfig{GlobalRequests: 1000, GlobalWindow: 60, RequestsPerIP: 100, WindowSeconds: 60}, cfg.RateLimit)
	s.Assert().Equal([]string{"*"}, cfg.CORS.AllowedOrigins)
	s.Assert().Equal([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	s.Assert().Equal([]string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"}, cfg.CORS.AllowedHeaders)
	s.Assert().False(cfg.CORS.AllowCredentials)
	s.Assert().Equal(86400, cfg.CORS.MaxAge)
}

func (s *HttpConfigTestSuite) TestLoadHttp_WithEnvironmentVariables() {
	setEnv(s.T(), map[string]string{
		"ENV":                          EnvStaging,
		"HTTP_MAX_BODY_BYTES":          "4096",
		"HTTP_SERVER_HOST":             "127.0.0.1",
		"HTTP_SERVER_PORT":             "9090",
		"HTTP_SERVER_SHUTDOWN_TIMEOUT": "5",
		"RATE_LIMIT_REQUESTS_PER_IP":   "20",
		"CORS_ALLOWED_ORIGINS":         "https://app.example.com,https://admin.example.com",
		"CORS_ALLOW_CREDENTIALS":       "true",
	})

	cfg, err := LoadHttp()

	s.Require().NoError(err)
	s.Assert().True(cfg.IsStaging())
	s.Assert().Equal(int64(4096), cfg.MaxBodyBytes)
	s.Assert().Equal("127.0.0.1", cfg.Server.Host)
	s.Assert().Equal(9090, cfg.Server.Port)
	s.Assert().Equal(5, cfg.Server.ShutdownTimeout)
	s.Assert().Equal(20, cfg.RateLimit.RequestsPerIP)
	s.Assert().Equal([]string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	s.Assert().True(cfg.CORS.AllowCredentials)
}

func (s *HttpConfigTestSuite) TestLoadHttp_IgnoresBareHostAndPort() {
	setEnv(s.T(), map[string]string{"HOST": "laptop", "PORT": "3000"})

	cfg, err := LoadHttp()

	s.Require().NoError(err)
	s.Assert().Equal("0.0.0.0", cfg.Server.Host)
	s.Assert().Equal(8080, cfg.Server.Port)
}

func (s *HttpConfigTestSuite) TestLoadHttp_InvalidValues() {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{name: "port out of range", env: map[string]string{"HTTP_SERVER_PORT": "70000"}, contains: "Server.Port must satisfy lte=65535"},
		{name: "zero body limit", env: map[string]string{"HTTP_MAX_BODY_BYTES": "0"}, contains: "MaxBodyBytes must satisfy min=1"},
		{name: "zero shutdown timeout", env: map[string]string{"HTTP_SERVER_SHUTDOWN_TIMEOUT": "0"}, contains: "Server.ShutdownTimeout must satisfy gte=1"},
		{name: "unknown environment", env: map[string]string{"ENV": "qa"}, contains: "BaseConfig.Environment must satisfy oneof"},
		{name: "non numeric port", env: map[string]string{"HTTP_SERVER_PORT": "http"}, contains: "HTTP_SERVER_PORT"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			setEnv(s.T(), tt.env)

			cfg, err := LoadHttp()

			s.Require().Error(err)
			s.Assert().Nil(cfg)
			s.Assert().Contains(err.Error(), tt.contains)
		})
	}
}

func BenchmarkLoadHttp(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = LoadHttp()
	}
}

func TestHttpConfigTestSuite(t *testing.T) {
	suite.Run(t, new(HttpConfigTestSuite))
}
