package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "vinpos-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout)
	assert.Equal(t, 1<<20, cfg.HTTP.MaxHeaderBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "AZN", cfg.POS.Currency)
	assert.True(t, cfg.POS.AllowNegativeStock)
	assert.Equal(t, "Epson", cfg.POS.PrinterBrand)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POS_APP_PORT", "9090")
	t.Setenv("POS_APP_ENV", "production")
	t.Setenv("POS_LOG_LEVEL", "debug")
	t.Setenv("POS_POS_ALLOW_NEGATIVE_STOCK", "false")
	t.Setenv("POS_POS_CURRENCY", "USD")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.POS.AllowNegativeStock)
	assert.Equal(t, "USD", cfg.POS.Currency)

	// Untouched keys keep their defaults
	assert.Equal(t, "vinpos-backend", cfg.App.Name)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout)
}
