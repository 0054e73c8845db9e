package main

import (
	"context"

	"go.uber.org/fx"

	"gateguard/internal/adapters/database"
	"gateguard/internal/adapters/health"
	httpAdapter "gateguard/internal/adapters/http"
	healthHttp "gateguard/internal/adapters/http/health"
	schemaHandler "gateguard/internal/adapters/http/schema"
	"gateguard/internal/adapters/loader"
	memoryRepo "gateguard/internal/adapters/repository/memory"
	postgresRepo "gateguard/internal/adapters/repository/postgres"
	"gateguard/internal/adapters/validator"
	"gateguard/internal/config"
	"gateguard/internal/core/domain/definition"
	"gateguard/internal/core/ports"
	"gateguard/internal/core/usecase/registry"
	platformHealth "gateguard/internal/platform/health"
	"gateguard/internal/platform/logger"
	"gateguard/internal/platform/metrics"
	"gateguard/internal/version"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadRegistry),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return logger.Config{
			Name:        "gateguard",
			Environment: cfg.Environment,
			Level:       cfg.Logger.Level,
			Format:      cfg.Logger.Format,
		}
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(database.NewDatabaseLifecycle),

	// Health Checks
	fx.Provide(fx.Annotate(
		func(cfg *config.RegistryConfig, db *database.Lifecycle, repo ports.DefinitionRepository) []platformHealth.Checker {
			checkers := []platformHealth.Checker{health.NewRegistryChecker(repo)}
			if cfg.UsesPostgres() {
				checkers = append(checkers, health.NewDatabaseChecker(db, "postgres"))
			}
			return checkers
		},
		fx.ResultTags(`group:"health_checkers,flatten"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// HTTP Server
	fx.Provide(metrics.NewProvider),
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(schemaHandler.NewHandler),
	fx.Provide(func() *healthHttp.LivenessHandler {
		return healthHttp.NewLivenessHandler(version.Get())
	}),
	fx.Provide(func(hm platformHealth.ManagerInterface) *healthHttp.ReadinessHandler {
		return healthHttp.NewReadinessHandler(version.Get(), hm)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, schemas *schemaHandler.Handler, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			SchemaHandler:    schemas,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			MetricsProvider:  metrics,
		}
	}),

	// Domain
	fx.Provide(func(db *database.Lifecycle) *postgresRepo.Repository {
		return postgresRepo.NewRepository(db)
	}),
	fx.Provide(func(cfg *config.RegistryConfig, pg *postgresRepo.Repository) ports.DefinitionRepository {
		if cfg.UsesPostgres() {
			return pg
		}
		return memoryRepo.NewRepository()
	}),
	fx.Provide(fx.Annotate(definition.NewService, fx.As(new(registry.DefinitionChecker)))),
	fx.Provide(func(p *metrics.Provider) registry.Recorder { return p }),
	fx.Provide(registry.NewUsecase),
	fx.Provide(func(uc *registry.Usecase) schemaHandler.Manager { return uc }),
	fx.Provide(func(uc *registry.Usecase) loader.Registrar { return uc }),
	fx.Provide(loader.NewPreloader),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.RegistryConfig, db *database.Lifecycle, pg *postgresRepo.Repository) {
		if !cfg.UsesPostgres() {
			return
		}
		lc.Append(fx.Hook{
			OnStart: db.Start,
			OnStop:  db.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: pg.CreateTable,
		})
	}),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.RegistryConfig, preloader *loader.Preloader) {
		if cfg.Registry.SchemaDir == "" {
			return
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				_, err := preloader.Preload(ctx, cfg.Registry.SchemaDir)
				return err
			},
		})
	}),
	fx.Invoke(func(lc fx.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
