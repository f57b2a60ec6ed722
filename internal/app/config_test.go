package app_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/xssrisk/internal/app"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := app.LoadConfig(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	assert.Equal(t, 256, cfg.Server.MaxConns)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 20*time.Second, cfg.Enhance.Timeout)
	assert.Equal(t, 500, cfg.Enhance.MaxSummaryLen)
	assert.InDelta(t, 0.3, cfg.Enhance.Temperature, 1e-6)
	assert.False(t, cfg.EnhancementEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Parallel()
	v := viper.New()
	v.Set("server.addr", "0.0.0.0:9000")
	v.Set("openai.api_key", "sk-test")
	v.Set("enhance.timeout", "5s")
	v.Set("log.format", "text")

	cfg, err := app.LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Enhance.Timeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.EnhancementEnabled())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()
	v := viper.New()
	v.Set("log.format", "xml")
	v.Set("server.max_conns", 0)

	_, err := app.LoadConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
	assert.Contains(t, err.Error(), "server.max_conns")
}

func TestLoadConfig_ZeroTemperature(t *testing.T) {
	t.Parallel()
	v := viper.New()
	v.Set("enhance.temperature", 0)

	_, err := app.LoadConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enhance.temperature")
}
