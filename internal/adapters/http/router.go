package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"gateguard/internal/adapters/http/health"
	"gateguard/internal/adapters/http/response"
	"gateguard/internal/adapters/http/schema"
	"gateguard/internal/config"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/metrics"
	platformMiddleware "gateguard/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	SchemaHandler    *schema.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(
		cfg.RateLimit.GlobalRequests,
		time.Duration(cfg.RateLimit.GlobalWindow)*time.Second,
	))
	r.Use(httprate.LimitByIP(
		cfg.RateLimit.RequestsPerIP,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, errors.New("route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(middleware.AllowContentType("application/json"))
		apiRouter.Use(middleware.RequestSize(cfg.MaxBodyBytes))
		apiRouter.Route("/schemas", func(schemaRouter chi.Router) {
			schemaRouter.Get("/", ErrorHandler(deps.SchemaHandler.ListSchemas))
			schemaRouter.Post("/", ErrorHandler(deps.SchemaHandler.CreateSchema))
			schemaRouter.Get("/{name}", ErrorHandler(deps.SchemaHandler.GetSchema))
			schemaRouter.Put("/{name}", ErrorHandler(deps.SchemaHandler.ReplaceSchema))
			schemaRouter.Delete("/{name}", ErrorHandler(deps.SchemaHandler.DeleteSchema))
			schemaRouter.Post("/{name}/validate", ErrorHandler(deps.SchemaHandler.Validate))
		})
	})

	return r
}
