package config_test

import (
	"testing"

	"github.com/bankwise/bank_account_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("RATE_LIMIT", "50-S")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "50-S", cfg.RateLimit)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}
