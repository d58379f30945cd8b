package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
)

func TestDemo(t *testing.T) {
	th := domain.Thresholds{LowPause: 5000, LowActivate: 15000, HighPause: 1000, HighActivate: 2000}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	campaigns, urls := Demo(th, now)
	require.Len(t, campaigns, demoCampaigns)
	require.Len(t, urls, demoCampaigns*demoURLsPerCampaign)

	again, _ := Demo(th, now.Add(time.Hour))
	seen := make(map[string]struct{})
	for i, c := range campaigns {
		assert.Equal(t, again[i].RemoteID, c.RemoteID)
		assert.True(t, c.Monitored())
		assert.Equal(t, th, c.Thresholds)
		seen[c.RemoteID] = struct{}{}
	}
	assert.Len(t, seen, demoCampaigns)

	for _, u := range urls {
		assert.Less(t, u.Clicks, u.ClickLimit)
		assert.True(t, u.Active())
		assert.False(t, u.CreatedAt.After(now))
	}
}
