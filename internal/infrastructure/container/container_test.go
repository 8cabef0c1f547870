package container

import (
	"context"
	"testing"

	"github.com/alchemorsel/personal-chef/internal/infrastructure/config"
	"github.com/alchemorsel/personal-chef/internal/infrastructure/persistence/memory"
	"github.com/alchemorsel/personal-chef/pkg/healthcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func TestModule_GraphIsComplete(t *testing.T) {
	err := fx.ValidateApp(fx.NopLogger, Module)

	assert.NoError(t, err)
}

func TestNewHealthCheck_ReportsUnconfiguredDependencies(t *testing.T) {
	// Arrange
	cfg := &config.Config{
		App:       config.AppConfig{Version: "1.0.0"},
		Nutrition: config.NutritionConfig{Provider: "none"},
		Email:     config.EmailConfig{Provider: "none"},
	}
	cache := memory.NewCacheRepository()
	defer cache.Close()

	// Act
	hc := NewHealthCheck(cfg, cache, nil, zap.NewNop())
	response := hc.Check(context.Background())

	// Assert
	assert.Equal(t, healthcheck.StatusDegraded, response.Status)
	require.Len(t, response.Checks, 2)
	assert.Equal(t, "email", response.Checks[0].Name)
	assert.Equal(t, "email not configured", response.Checks[0].Message)
	assert.Equal(t, "nutrition", response.Checks[1].Name)
}
