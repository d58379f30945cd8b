package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendguard/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.False(t, cfg.Store.Memory())
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.LockTTL)
	assert.Equal(t, 3, cfg.AdNetwork.MaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.Psql.PingTimeout)

	c := cfg.Controller
	assert.True(t, c.HighSpendBoundary.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 10*time.Minute, c.InitialPricingWait)
	assert.Equal(t, 9*time.Minute, c.BatchWait)
	assert.Equal(t, time.Minute, c.BatchSweepInterval)
	assert.Equal(t, 2*time.Minute, c.PausedCheckInterval)
	assert.Equal(t, int64(5000), c.LowPause)
	assert.Equal(t, int64(15000), c.LowActivate)
	assert.Equal(t, int64(1000), c.HighPause)
	assert.Equal(t, int64(2000), c.HighActivate)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "spendguard", cfg.Metrics.Namespace)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("CONTROLLER_HIGH_SPEND_BOUNDARY", "12.50")
	t.Setenv("CONTROLLER_BATCH_WAIT", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Store.Memory())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Controller.HighSpendBoundary.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, 90*time.Second, cfg.Controller.BatchWait)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("CONTROLLER_INITIAL_PRICING_WAIT", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"STORE_DRIVER":                   "sqlite",
		"CONTROLLER_HIGH_SPEND_BOUNDARY": "-1",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadRejectsLockShorterThanTick(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REDIS_LOCK_TTL", "30s")
	t.Setenv("CONTROLLER_TICK_TIMEOUT", "30s")
	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv("REDIS_LOCK_TTL", "45s")
	_, err = Load()
	assert.NoError(t, err)
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := configs.Logger{Level: "warn", Format: "json"}
	logger := slog.New(cfg.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.Int64("campaign_id", 7))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"campaign_id":7`)
}
