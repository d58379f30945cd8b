package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigLockOutlivesTick(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Greater(t, cfg.LockTTL, cfg.TickTimeout)

	cfg = Config{TickTimeout: 40 * time.Second, LockTTL: 30 * time.Second}.withDefaults()
	assert.Equal(t, 80*time.Second, cfg.LockTTL)

	cfg = Config{TickTimeout: 10 * time.Second, LockTTL: 15 * time.Second}.withDefaults()
	assert.Equal(t, 15*time.Second, cfg.LockTTL)
}
