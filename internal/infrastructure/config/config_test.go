package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Grocerly", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "https://integrate.api.nvidia.com/v1", cfg.AI.BaseURL)
	assert.Equal(t, "meta/llama-3.3-70b-instruct", cfg.AI.Model)
	assert.Equal(t, 3, cfg.Shopping.DefaultMaxStores)
	assert.InDelta(t, 0.50, cfg.Shopping.VarietyWeight, 1e-9)

	// Redis is opt-in, no host by default.
	assert.Empty(t, cfg.RedisAddr())
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("GROCERLY_SERVER_PORT", "9999")
	t.Setenv("GROCERLY_AI_PROVIDER", "ollama")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.AI.Provider)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.AI.Provider = "skynet"
	assert.Error(t, cfg.Validate())

	cfg, err = Load("")
	require.NoError(t, err)
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg, err = Load("")
	require.NoError(t, err)
	cfg.Shopping.DefaultMaxStores = 0
	assert.Error(t, cfg.Validate())
}

func TestRedisAddr(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Redis.Host = "cache.internal"
	assert.Equal(t, "cache.internal:6379", cfg.RedisAddr())
}
