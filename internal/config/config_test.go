package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, time.Duration(0), cfg.Cache.SweepInterval, "sweep is off by default")
	assert.Equal(t, 5*time.Second, cfg.Providers.ExchangeTimeout)
	assert.Equal(t, 10*time.Second, cfg.Providers.CBRTimeout)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("BINANCE_BASE_URL", "http://localhost:9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "http://localhost:9999", cfg.Providers.BinanceBaseURL)
}
