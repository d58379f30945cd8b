package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
)

// Config controls controller timing. The initial pricing wait and the batch
// wait are independent on purpose; zero values fall back to DefaultConfig.
type Config struct {
	HighSpendBoundary   decimal.Decimal
	InitialPricingWait  time.Duration
	BatchWait           time.Duration
	BatchSweepInterval  time.Duration
	ActiveCheckInterval time.Duration
	PausedCheckInterval time.Duration
	TickTimeout         time.Duration
	LockTTL             time.Duration
}

func DefaultConfig() Config {
	return Config{
		HighSpendBoundary:   domain.HighSpendBoundary,
		InitialPricingWait:  10 * time.Minute,
		BatchWait:           9 * time.Minute,
		BatchSweepInterval:  time.Minute,
		ActiveCheckInterval: time.Minute,
		PausedCheckInterval: 2 * time.Minute,
		TickTimeout:         30 * time.Second,
		LockTTL:             time.Minute,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if !c.HighSpendBoundary.IsPositive() {
		c.HighSpendBoundary = defaults.HighSpendBoundary
	}
	if c.InitialPricingWait <= 0 {
		c.InitialPricingWait = defaults.InitialPricingWait
	}
	if c.BatchWait <= 0 {
		c.BatchWait = defaults.BatchWait
	}
	if c.BatchSweepInterval <= 0 {
		c.BatchSweepInterval = defaults.BatchSweepInterval
	}
	if c.ActiveCheckInterval <= 0 {
		c.ActiveCheckInterval = defaults.ActiveCheckInterval
	}
	if c.PausedCheckInterval <= 0 {
		c.PausedCheckInterval = defaults.PausedCheckInterval
	}
	if c.TickTimeout <= 0 {
		c.TickTimeout = defaults.TickTimeout
	}
	if c.LockTTL <= 0 {
		c.LockTTL = defaults.LockTTL
	}
	// The lock must outlive the longest tick or another replica can take it
	// mid-tick.
	if c.LockTTL <= c.TickTimeout {
		c.LockTTL = 2 * c.TickTimeout
	}
	return c
}
