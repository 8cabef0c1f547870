// Package container provides dependency injection using Uber FX
// This implements the Dependency Inversion Principle from SOLID
package container

import (
	"context"
	"fmt"

	app "github.com/alchemorsel/personal-chef/internal/application/recipe"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/config"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/email"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/http/handlers"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/http/server"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/monitoring"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/nutrition"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/nutrition/usda"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/persistence/memory"
	redisRepo "github.com/alchemorsel/personal-chef/internal/infrastructure/persistence/redis"
	"github.com/alchemorsel/personal-chef/internal/ports/inbound"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/alchemorsel/personal-chef/pkg/healthcheck"
	"github.com/alchemorsel/personal-chef/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	// Infrastructure modules
	ConfigModule,
	LoggerModule,
	MonitoringModule,
	CacheModule,
	NutritionModule,
	EmailModule,

	// Service modules
	ServiceModule,

	// HTTP modules
	HTTPModule,

	// Lifecycle hooks
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// MonitoringModule provides metrics and tracing
var MonitoringModule = fx.Provide(
	func() *prometheus.Registry {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return registry
	},
	func(cfg *config.Config, registry *prometheus.Registry, log *zap.Logger) *monitoring.MetricsCollector {
		if !cfg.Monitoring.EnableMetrics {
			return nil
		}
		return monitoring.NewMetricsCollector(registry, log)
	},
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*monitoring.TracingProvider, error) {
		tp, err := monitoring.NewTracingProvider(context.Background(), monitoring.TracingConfig{
			ServiceName:    cfg.App.Name,
			ServiceVersion: cfg.App.Version,
			Environment:    cfg.App.Environment,
			OTLPEndpoint:   cfg.Monitoring.OTLPEndpoint,
			SamplingRate:   cfg.Monitoring.SamplingRate,
			Enabled:        cfg.Monitoring.EnableTracing,
		}, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: tp.Shutdown})
		return tp, nil
	},
)

// CacheModule provides caching
var CacheModule = fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Cache.Driver == "redis" {
			client, err := redisRepo.NewClient(context.Background(), cfg.Cache.Redis, log)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to redis: %w", err)
			}
			lc.Append(fx.Hook{OnStop: func(context.Context) error { return client.Close() }})
			return redisRepo.NewCacheRepository(client, log), nil
		}

		log.Info("Using in-memory cache")
		repo := memory.NewCacheRepository()
		lc.Append(fx.Hook{OnStop: func(context.Context) error {
			repo.Close()
			return nil
		}})
		return repo, nil
	},
)

// NutritionModule provides the nutrition lookup chain
var NutritionModule = fx.Provide(
	func(
		cfg *config.Config,
		cache outbound.CacheRepository,
		metrics *monitoring.MetricsCollector,
		log *zap.Logger,
	) outbound.NutritionLookup {
		if cfg.Nutrition.Provider == "none" {
			log.Warn("Nutrition lookups disabled, recipes will report zero nutrition")
			return nutrition.NoopLookup{}
		}

		client := usda.NewClient(cfg.Nutrition.BaseURL, cfg.Nutrition.APIKey, cfg.Nutrition.Timeout, log)
		return nutrition.NewCachedLookup(client, cache, cfg.Nutrition.CacheTTL, metrics, log)
	},
)

// EmailModule provides the email sender. It provides nil when email is
// not configured.
var EmailModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.EmailSender {
		switch cfg.Email.Provider {
		case "smtp":
			return email.NewSMTPSender(cfg.Email, log)
		case "log":
			return email.NewLogSender(log)
		default:
			log.Info("Email is not configured")
			return nil
		}
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		cfg *config.Config,
		lookup outbound.NutritionLookup,
		sender outbound.EmailSender,
		cache outbound.CacheRepository,
		metrics *monitoring.MetricsCollector,
		log *zap.Logger,
	) inbound.ChefService {
		return app.NewService(lookup, sender, cache, metrics, app.Options{
			LookupConcurrency: cfg.Nutrition.Concurrency,
			DailyEmailLimit:   cfg.Email.DailyLimit,
		}, log)
	},
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewToolHandlers,
	NewHealthCheck,
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// NewHealthCheck registers the dependency checks served on the health path
func NewHealthCheck(
	cfg *config.Config,
	cache outbound.CacheRepository,
	sender outbound.EmailSender,
	log *zap.Logger,
) *healthcheck.HealthCheck {
	hc := healthcheck.New(cfg.App.Version, log)

	if pinger, ok := cache.(healthcheck.Pinger); ok {
		hc.Register("cache", healthcheck.NewPingChecker(pinger, false))
	}

	hc.Register("nutrition", healthcheck.NewCustomChecker(func(ctx context.Context) (healthcheck.Status, string, interface{}) {
		meta := map[string]interface{}{"provider": cfg.Nutrition.Provider}
		if cfg.Nutrition.Provider == "none" {
			return healthcheck.StatusDegraded, "nutrition lookups disabled", meta
		}
		return healthcheck.StatusHealthy, "", meta
	}))

	hc.Register("email", healthcheck.NewCustomChecker(func(ctx context.Context) (healthcheck.Status, string, interface{}) {
		meta := map[string]interface{}{"provider": cfg.Email.Provider}
		if sender == nil {
			return healthcheck.StatusDegraded, "email not configured", meta
		}
		return healthcheck.StatusHealthy, "", meta
	}))

	return hc
}

// RegisterLifecycleHooks registers application lifecycle hooks. The tracing
// provider is resolved before the server so its shutdown hook runs after the
// server has drained.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	log *zap.Logger,
	tracing *monitoring.TracingProvider,
	server *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Personal Chef",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.Bool("tracing", tracing.Enabled()),
			)

			// Start HTTP server
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Personal Chef")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
