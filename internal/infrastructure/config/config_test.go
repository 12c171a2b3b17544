package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	t.Setenv("SPOONACULAR_API_KEY", "")
	t.Setenv("RECIPE_API_KEY", "")
	t.Setenv("CLIENT_URLS", "")
	t.Setenv("CLIENT_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 100, cfg.Cache.MaxSize)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.BaseURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RECIPE_API_KEY", "abcd1234efgh")
	t.Setenv("USE_SAMPLE_RECIPES", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CLIENT_URLS", "https://a.example.com, https://b.example.com,")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.HasAPIKey())
	assert.Equal(t, "abcd1234efgh", cfg.Spoonacular.APIKey)
	assert.Equal(t, "true", cfg.Recipes.UseSample)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "secret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "abcd...mnop", MaskAPIKey("abcdefghijklmnop"))
}
