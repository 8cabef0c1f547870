package nutrition

import (
	"context"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
)

// NoopLookup reports no nutrition for every ingredient. It backs the
// "none" provider.
type NoopLookup struct{}

var _ outbound.NutritionLookup = NoopLookup{}

// Lookup returns the empty record
func (NoopLookup) Lookup(context.Context, outbound.NutritionQuery) (recipe.NutritionRecord, error) {
	return recipe.NutritionRecord{}, nil
}
