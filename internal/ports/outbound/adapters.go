// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
)

// ErrCacheMiss is returned by CacheRepository.Get when a key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// NutritionQuery identifies an ingredient amount to look up
type NutritionQuery struct {
	Name     string
	Quantity float64
	Unit     string
}

// NutritionLookup resolves the nutrition of an ingredient amount.
// A lookup that finds nothing returns an empty record and no error.
type NutritionLookup interface {
	Lookup(ctx context.Context, q NutritionQuery) (recipe.NutritionRecord, error)
}

// EmailMessage is an outgoing email
type EmailMessage struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// EmailSender delivers email
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Counter operations
	Increment(ctx context.Context, key string) (int64, error)
	Decrement(ctx context.Context, key string) (int64, error)
}
