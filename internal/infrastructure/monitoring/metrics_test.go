package monitoring

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsCollector_HTTPMiddlewareUsesRoutePattern(t *testing.T) {
	// Arrange
	collector := NewMetricsCollector(prometheus.NewRegistry(), zap.NewNop())
	r := chi.NewRouter()
	r.Use(collector.HTTPMiddleware)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	// Act
	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/recipes/"+id, nil))
	}

	// Assert
	got := testutil.ToFloat64(collector.httpRequestsTotal.WithLabelValues(http.MethodGet, "/recipes/{id}", "202"))
	assert.Equal(t, float64(3), got)
}

func TestMetricsCollector_ToolCounters(t *testing.T) {
	collector := NewMetricsCollector(prometheus.NewRegistry(), zap.NewNop())

	collector.ToolInvoked("recipe", OutcomeSuccess)
	collector.ToolInvoked("recipe", OutcomeSuccess)
	collector.ToolInvoked("recipe", OutcomeError)
	collector.NutritionLookup(OutcomeEmpty)
	collector.NutritionCacheHit()
	collector.ShoppingListBuilt(12)

	assert.Equal(t, float64(2), testutil.ToFloat64(collector.toolInvocationsTotal.WithLabelValues("recipe", OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.toolInvocationsTotal.WithLabelValues("recipe", OutcomeError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.nutritionLookups.WithLabelValues(OutcomeEmpty)))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.nutritionCacheHits))
}

func TestMetricsCollector_NilIsNoop(t *testing.T) {
	var collector *MetricsCollector

	assert.NotPanics(t, func() {
		collector.ToolInvoked("recipe", OutcomeSuccess)
		collector.NutritionLookup(OutcomeSuccess)
		collector.NutritionCacheHit()
		collector.ShoppingListBuilt(3)
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, collector.HTTPMiddleware(next))
}

func TestMetricsCollector_Handler(t *testing.T) {
	collector := NewMetricsCollector(prometheus.NewRegistry(), zap.NewNop())
	collector.NutritionCacheHit()

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "nutrition_cache_hits_total 1")
}

func TestTracingProvider_Disabled(t *testing.T) {
	tp, err := NewTracingProvider(context.Background(), TracingConfig{ServiceName: "personal-chef"}, zap.NewNop())

	require.NoError(t, err)
	assert.False(t, tp.Enabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
