package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HighSpendBoundary is the default daily spend at which a campaign leaves the
// low regime. The controller may be configured with a different value.
var HighSpendBoundary = decimal.NewFromInt(10)

// Campaign represents an advertising campaign mirrored on a remote ad network.
// Money is kept as decimal; thresholds are click counts.
type Campaign struct {
	ID               int64
	RemoteID         string
	Name             string
	PricePerThousand decimal.Decimal // price of one thousand clicks
	State            State
	LastTransitionAt *time.Time
	Thresholds       Thresholds
	// WaitingSince is set when the campaign enters high_spend_waiting.
	WaitingSince *time.Time
	// HighSpendCalcAt is the instant the current cycle's initial budget was computed.
	HighSpendCalcAt   *time.Time
	DailySpent        decimal.Decimal
	MonitoringEnabled bool
	DeletedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PriceFor returns the budget owed for the given number of clicks.
func (c *Campaign) PriceFor(clicks int64) decimal.Decimal {
	return decimal.NewFromInt(clicks).Div(decimal.NewFromInt(1000)).Mul(c.PricePerThousand)
}

// Monitored reports whether the campaign should have a monitor armed.
func (c *Campaign) Monitored() bool {
	return c.MonitoringEnabled && c.DeletedAt == nil
}

// ResetCycle forgets every per-cycle marker. Ledger rows and pending batch
// entries are cleared by their owners.
func (c *Campaign) ResetCycle() {
	c.WaitingSince = nil
	c.HighSpendCalcAt = nil
}

// EndOfDay returns 23:59 UTC of the day containing t.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, time.UTC)
}
