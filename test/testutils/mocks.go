// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"time"

	"github.com/alchemorsel/personal-chef/internal/domain/recipe"
	"github.com/alchemorsel/personal-chef/internal/ports/inbound"
	"github.com/alchemorsel/personal-chef/internal/ports/outbound"
	"github.com/stretchr/testify/mock"
)

// MockNutritionLookup provides a mock implementation of NutritionLookup
type MockNutritionLookup struct {
	mock.Mock
}

// Lookup looks up nutrition for an ingredient amount
func (m *MockNutritionLookup) Lookup(ctx context.Context, q outbound.NutritionQuery) (recipe.NutritionRecord, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(recipe.NutritionRecord), args.Error(1)
}

// MockEmailSender provides a mock implementation of EmailSender
type MockEmailSender struct {
	mock.Mock
}

// Send sends an email
func (m *MockEmailSender) Send(ctx context.Context, msg outbound.EmailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

// Get retrieves a value
func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Set stores a value
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

// Delete removes a value
func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Exists checks for a key
func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Increment increments a counter
func (m *MockCacheRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

// Decrement lowers a counter
func (m *MockCacheRepository) Decrement(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ outbound.NutritionLookup = (*MockNutritionLookup)(nil)
	_ outbound.EmailSender     = (*MockEmailSender)(nil)
	_ outbound.CacheRepository = (*MockCacheRepository)(nil)
)

// MockChefService provides a mock implementation of ChefService
type MockChefService struct {
	mock.Mock
}

// PresentRecipe presents a generated recipe
func (m *MockChefService) PresentRecipe(ctx context.Context, cmd inbound.PresentRecipeCommand) (*inbound.ToolResult, error) {
	args := m.Called(ctx, cmd)
	return toolResult(args.Get(0)), args.Error(1)
}

// ScaleRecipe rescales a recipe
func (m *MockChefService) ScaleRecipe(ctx context.Context, cmd inbound.ScaleRecipeCommand) (*inbound.ScaledRecipe, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.ScaledRecipe), args.Error(1)
}

// GenerateShoppingList builds a shopping list
func (m *MockChefService) GenerateShoppingList(ctx context.Context, cmd inbound.ShoppingListCommand) (*inbound.ToolResult, error) {
	args := m.Called(ctx, cmd)
	return toolResult(args.Get(0)), args.Error(1)
}

// SendShoppingList emails a shopping list
func (m *MockChefService) SendShoppingList(ctx context.Context, cmd inbound.SendShoppingListCommand) (*inbound.ToolResult, error) {
	args := m.Called(ctx, cmd)
	return toolResult(args.Get(0)), args.Error(1)
}

func toolResult(v interface{}) *inbound.ToolResult {
	if v == nil {
		return nil
	}
	return v.(*inbound.ToolResult)
}

var _ inbound.ChefService = (*MockChefService)(nil)
