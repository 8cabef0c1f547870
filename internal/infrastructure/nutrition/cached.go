// Package nutrition provides NutritionLookup decorators and fallbacks
package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/monitoring"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// keyNamespace scopes the name-based UUIDs used as cache keys
var keyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://personal-chef.local/nutrition"))

// CachedLookup serves lookups from a cache before delegating to the
// wrapped lookup. Empty records are not cached so a later lookup can
// succeed once the upstream recovers.
type CachedLookup struct {
	next    outbound.NutritionLookup
	cache   outbound.CacheRepository
	ttl     time.Duration
	metrics *monitoring.MetricsCollector
	logger  *zap.Logger
}

var _ outbound.NutritionLookup = (*CachedLookup)(nil)

// NewCachedLookup creates a caching decorator around next
func NewCachedLookup(
	next outbound.NutritionLookup,
	cache outbound.CacheRepository,
	ttl time.Duration,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) *CachedLookup {
	return &CachedLookup{
		next:    next,
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger.Named("nutrition-cache"),
	}
}

// CacheKey returns the cache key for a query. Names and units are
// compared case-insensitively.
func CacheKey(q outbound.NutritionQuery) string {
	name := strings.ToLower(strings.TrimSpace(q.Name))
	unit := strings.ToLower(strings.TrimSpace(q.Unit))
	quantity := strconv.FormatFloat(q.Quantity, 'f', -1, 64)
	return "nutrition:" + uuid.NewSHA1(keyNamespace, []byte(name+"|"+quantity+"|"+unit)).String()
}

// Lookup implements NutritionLookup
func (c *CachedLookup) Lookup(ctx context.Context, q outbound.NutritionQuery) (recipe.NutritionRecord, error) {
	key := CacheKey(q)

	if record, ok := c.get(ctx, key); ok {
		c.metrics.NutritionCacheHit()
		return record, nil
	}

	record, err := c.next.Lookup(ctx, q)
	if err != nil || record.IsEmpty() {
		return record, err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return record, nil
	}
	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache nutrition", zap.String("ingredient", q.Name), zap.Error(err))
	}

	return record, nil
}

func (c *CachedLookup) get(ctx context.Context, key string) (recipe.NutritionRecord, bool) {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, outbound.ErrCacheMiss) {
			c.logger.Warn("Nutrition cache read failed", zap.String("key", key), zap.Error(err))
		}
		return recipe.NutritionRecord{}, false
	}

	var record recipe.NutritionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		c.logger.Warn("Discarding corrupt nutrition cache entry", zap.String("key", key), zap.Error(fmt.Errorf("decode: %w", err)))
		_ = c.cache.Delete(ctx, key)
		return recipe.NutritionRecord{}, false
	}
	return record, true
}
