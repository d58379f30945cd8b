package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestThresholdsRepair(t *testing.T) {
	cases := []struct {
		name    string
		in      Thresholds
		want    Thresholds
		changed bool
	}{
		{
			name: "valid",
			in:   Thresholds{LowPause: 5000, LowActivate: 15000, HighPause: 1000, HighActivate: 2000},
			want: Thresholds{LowPause: 5000, LowActivate: 15000, HighPause: 1000, HighActivate: 2000},
		},
		{
			name:    "inverted low",
			in:      Thresholds{LowPause: 5000, LowActivate: 4000, HighPause: 1000, HighActivate: 2000},
			want:    Thresholds{LowPause: 5000, LowActivate: 5751, HighPause: 1000, HighActivate: 2000},
			changed: true,
		},
		{
			name:    "exactly fifteen percent is not enough",
			in:      Thresholds{LowPause: 5000, LowActivate: 15000, HighPause: 1000, HighActivate: 1150},
			want:    Thresholds{LowPause: 5000, LowActivate: 15000, HighPause: 1000, HighActivate: 1151},
			changed: true,
		},
		{
			name:    "zero pause",
			in:      Thresholds{},
			want:    Thresholds{LowActivate: 1, HighActivate: 1},
			changed: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := tc.in.Repair()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.changed, changed)
			assert.True(t, got.Valid())
		})
	}
}

func TestThresholdsRepairHoldsForAnyPause(t *testing.T) {
	for pause := int64(0); pause < 5000; pause += 7 {
		got, _ := Thresholds{LowPause: pause, HighPause: pause}.Repair()
		assert.True(t, got.Valid(), "pause %d", pause)
	}
}

func TestBandContains(t *testing.T) {
	b := Thresholds{HighPause: 1000, HighActivate: 2000}.Band(true)
	assert.False(t, b.Contains(999))
	assert.True(t, b.Contains(1000))
	assert.True(t, b.Contains(1999))
	assert.False(t, b.Contains(2000))
}

func TestURLRemaining(t *testing.T) {
	u := URL{ClickLimit: 1000, Clicks: 100}
	assert.Equal(t, int64(900), u.Remaining())
	u.Clicks = 1200
	assert.Equal(t, int64(0), u.Remaining())
}

func TestURLLateFor(t *testing.T) {
	calcAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := URL{CreatedAt: calcAt}
	assert.False(t, u.LateFor(nil))
	assert.False(t, u.LateFor(&calcAt))
	u.CreatedAt = calcAt.Add(time.Minute)
	assert.True(t, u.LateFor(&calcAt))
}

func TestCampaignPriceFor(t *testing.T) {
	c := Campaign{PricePerThousand: decimal.NewFromInt(5)}
	assert.True(t, c.PriceFor(900).Equal(decimal.RequireFromString("4.50")))
	assert.True(t, c.PriceFor(5000).Equal(decimal.RequireFromString("25")))
}

func TestStatePredicates(t *testing.T) {
	assert.False(t, StateLowSpend.HighRegime())
	assert.True(t, StateHighSpendWaiting.HighRegime())
	assert.False(t, StateHighSpendWaiting.PricedHigh())
	assert.True(t, StateHighSpendPausedLowClicks.PricedHigh())
	assert.True(t, StateHighSpendBudgetUpdated.Running())
	assert.False(t, State("bogus").Valid())
}

func TestEndOfDay(t *testing.T) {
	at := time.Date(2026, 3, 1, 4, 30, 0, 0, time.FixedZone("x", -8*3600))
	assert.Equal(t, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC), EndOfDay(at))
}
