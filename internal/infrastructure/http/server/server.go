// Package server provides the HTTP server for the tool API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alchemorsel/personal-chef/internal/infrastructure/config"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/http/handlers"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/http/middleware"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/monitoring"
	"github.com/alchemorsel/personal-chef/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

// Server represents the HTTP server
type Server struct {
	config  *config.Config
	logger  *zap.Logger
	router  *chi.Mux
	server  *http.Server
	tools   *handlers.ToolHandlers
	health  *healthcheck.HealthCheck
	metrics *monitoring.MetricsCollector
	limiter *middleware.RateLimiter
}

// NewServer creates a new HTTP server instance. metrics may be nil when
// metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tools *handlers.ToolHandlers,
	health *healthcheck.HealthCheck,
	metrics *monitoring.MetricsCollector,
) *Server {
	s := &Server{
		config:  cfg,
		logger:  logger.Named("http-server"),
		tools:   tools,
		health:  health,
		metrics: metrics,
		limiter: middleware.NewRateLimiter(cfg.RateLimit),
	}

	s.router = s.setupRouter()

	var handler http.Handler = s.router
	if cfg.Monitoring.EnableTracing {
		handler = otelhttp.NewHandler(s.router, cfg.App.Name,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// Router exposes the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	if s.config.Server.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(s.metrics.HTTPMiddleware)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// Timeout middleware
	if s.config.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	}

	r.Get(s.config.Monitoring.HealthCheckPath, s.health.Handler())

	if s.config.Monitoring.EnableMetrics && s.metrics != nil {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Use(middleware.JSONOnly())
		s.tools.Routes(r)
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	// Enable HTTP/2
	if err := http2.ConfigureServer(s.server, nil); err != nil {
		s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	defer s.limiter.Close()
	return s.server.Shutdown(ctx)
}
