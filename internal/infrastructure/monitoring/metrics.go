package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeEmpty   = "empty"
)

// MetricsCollector handles Prometheus metrics collection. A nil collector
// records nothing.
type MetricsCollector struct {
	logger   *zap.Logger
	gatherer prometheus.Gatherer

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Tool metrics
	toolInvocationsTotal *prometheus.CounterVec
	nutritionLookups     *prometheus.CounterVec
	nutritionCacheHits   prometheus.Counter
	shoppingListItems    prometheus.Histogram
}

// NewMetricsCollector registers the application metrics on registry
func NewMetricsCollector(registry *prometheus.Registry, logger *zap.Logger) *MetricsCollector {
	factory := promauto.With(registry)

	return &MetricsCollector{
		logger:   logger.Named("metrics"),
		gatherer: registry,

		// HTTP metrics
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		// Tool metrics
		toolInvocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tool_invocations_total",
				Help: "Total number of tool calls by outcome",
			},
			[]string{"tool", "outcome"},
		),
		nutritionLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutrition_lookups_total",
				Help: "Total number of ingredient nutrition lookups by outcome",
			},
			[]string{"outcome"},
		),
		nutritionCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "nutrition_cache_hits_total",
				Help: "Total number of nutrition lookups served from cache",
			},
		),
		shoppingListItems: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopping_list_items",
				Help:    "Number of items per generated shopping list",
				Buckets: []float64{1, 5, 10, 15, 20, 30, 50},
			},
		),
	}
}

// HTTPMiddleware creates a chi middleware for HTTP metrics collection.
// Requests are labelled by route pattern to keep cardinality bounded.
func (m *MetricsCollector) HTTPMiddleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		statusCode := strconv.Itoa(status)

		m.httpRequestsTotal.WithLabelValues(r.Method, path, statusCode).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, path, statusCode).Observe(time.Since(start).Seconds())
	})
}

// ToolInvoked records a tool call
func (m *MetricsCollector) ToolInvoked(tool, outcome string) {
	if m == nil {
		return
	}
	m.toolInvocationsTotal.WithLabelValues(tool, outcome).Inc()
}

// NutritionLookup records an ingredient lookup
func (m *MetricsCollector) NutritionLookup(outcome string) {
	if m == nil {
		return
	}
	m.nutritionLookups.WithLabelValues(outcome).Inc()
}

// NutritionCacheHit records a lookup served from cache
func (m *MetricsCollector) NutritionCacheHit() {
	if m == nil {
		return
	}
	m.nutritionCacheHits.Inc()
}

// ShoppingListBuilt records the size of a generated list
func (m *MetricsCollector) ShoppingListBuilt(items int) {
	if m == nil {
		return
	}
	m.shoppingListItems.Observe(float64(items))
}

// Handler returns the Prometheus metrics HTTP handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
