package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Act
	cfg, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Personal Chef", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, "usda", cfg.Nutrition.Provider)
	assert.Equal(t, 8, cfg.Nutrition.Concurrency)
	assert.Equal(t, 24*time.Hour, cfg.Nutrition.CacheTTL)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, "none", cfg.Email.Provider)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PERSONALCHEF_SERVER_PORT", "9090")
	t.Setenv("PERSONALCHEF_CACHE_DRIVER", "redis")
	t.Setenv("PERSONALCHEF_EMAIL_PROVIDER", "smtp")
	t.Setenv("PERSONALCHEF_EMAIL_SMTP_HOST", "smtp.example.com")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "smtp.example.com", cfg.Email.SMTPHost)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  environment: production
nutrition:
  provider: none
  concurrency: 2
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "none", cfg.Nutrition.Provider)
	assert.Equal(t, 2, cfg.Nutrition.Concurrency)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:       AppConfig{Name: "Personal Chef"},
			Server:    ServerConfig{Port: 8080},
			Nutrition: NutritionConfig{Provider: "usda", BaseURL: "http://usda.test", Concurrency: 4},
			Cache:     CacheConfig{Driver: "memory"},
			Email:     EmailConfig{Provider: "none"},
			RateLimit: RateLimitConfig{Enable: true, RequestsPerMin: 60},
		}
	}

	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"MissingName":        func(c *Config) { c.App.Name = "" },
		"PortOutOfRange":     func(c *Config) { c.Server.Port = 70000 },
		"UnknownProvider":    func(c *Config) { c.Nutrition.Provider = "edamam" },
		"UsdaWithoutURL":     func(c *Config) { c.Nutrition.BaseURL = "" },
		"ZeroConcurrency":    func(c *Config) { c.Nutrition.Concurrency = 0 },
		"UnknownCacheDriver": func(c *Config) { c.Cache.Driver = "memcached" },
		"SMTPWithoutHost":    func(c *Config) { c.Email.Provider = "smtp" },
		"UnknownEmail":       func(c *Config) { c.Email.Provider = "resend" },
		"ZeroRateLimit":      func(c *Config) { c.RateLimit.RequestsPerMin = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
