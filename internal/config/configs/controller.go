package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Controller holds the campaign state machine settings. The initial pricing
// wait and the batch wait are separate knobs.
type Controller struct {
	HighSpendBoundary   decimal.Decimal `env:"HIGH_SPEND_BOUNDARY" envDefault:"10.00"`
	InitialPricingWait  time.Duration   `env:"INITIAL_PRICING_WAIT" envDefault:"10m"`
	BatchWait           time.Duration   `env:"BATCH_WAIT" envDefault:"9m"`
	BatchSweepInterval  time.Duration   `env:"BATCH_SWEEP_INTERVAL" envDefault:"1m"`
	ActiveCheckInterval time.Duration   `env:"ACTIVE_CHECK_INTERVAL" envDefault:"1m"`
	PausedCheckInterval time.Duration   `env:"PAUSED_CHECK_INTERVAL" envDefault:"2m"`
	SupervisorInterval  time.Duration   `env:"SUPERVISOR_INTERVAL" envDefault:"1m"`
	TickTimeout         time.Duration   `env:"TICK_TIMEOUT" envDefault:"30s"`

	// Thresholds given to seeded campaigns.
	LowPause     int64 `env:"LOW_PAUSE" envDefault:"5000"`
	LowActivate  int64 `env:"LOW_ACTIVATE" envDefault:"15000"`
	HighPause    int64 `env:"HIGH_PAUSE" envDefault:"1000"`
	HighActivate int64 `env:"HIGH_ACTIVATE" envDefault:"2000"`
}
