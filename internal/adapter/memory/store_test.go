package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendguard/internal/core/domain"
)

func TestLedgerInsertSkipsExistingURL(t *testing.T) {
	ctx := context.Background()
	ledger := NewStore().Ledger()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entry := domain.BudgetLedgerEntry{URLID: 1, CampaignID: 10, ContributedBudget: decimal.RequireFromString("4.50"), LoggedAt: now}
	ids, err := ledger.Insert(ctx, []domain.BudgetLedgerEntry{entry})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	entry.ContributedBudget = decimal.RequireFromString("99")
	ids, err = ledger.Insert(ctx, []domain.BudgetLedgerEntry{entry})
	require.NoError(t, err)
	assert.Empty(t, ids)

	entries, err := ledger.Entries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].ContributedBudget.Equal(decimal.RequireFromString("4.50")))

	cleared, err := ledger.Clear(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)
}

func TestLedgerDeleteRemovesListedURLs(t *testing.T) {
	ctx := context.Background()
	ledger := NewStore().Ledger()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := ledger.Insert(ctx, []domain.BudgetLedgerEntry{
		{URLID: 1, CampaignID: 10, ContributedBudget: decimal.NewFromInt(1), LoggedAt: now},
		{URLID: 2, CampaignID: 10, ContributedBudget: decimal.NewFromInt(2), LoggedAt: now},
		{URLID: 3, CampaignID: 11, ContributedBudget: decimal.NewFromInt(3), LoggedAt: now},
	})
	require.NoError(t, err)

	n, err := ledger.Delete(ctx, 10, []int64{2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err := ledger.Entries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].URLID)

	entries, err = ledger.Entries(ctx, 11)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCampaignSaveRepairsThresholds(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.PutCampaign(domain.Campaign{ID: 1})

	err := store.Campaigns().Save(ctx, &domain.Campaign{
		ID:         1,
		Thresholds: domain.Thresholds{LowPause: 5000, LowActivate: 5000, HighPause: 1000, HighActivate: 2000},
	})
	require.NoError(t, err)

	got, err := store.Campaigns().Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Thresholds.Valid())
	assert.Equal(t, int64(5751), got.Thresholds.LowActivate)
}

func TestCampaignSaveUnknown(t *testing.T) {
	err := NewStore().Campaigns().Save(context.Background(), &domain.Campaign{ID: 5})
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestListActiveFiltersStatus(t *testing.T) {
	store := NewStore()
	store.PutURL(domain.URL{ID: 1, CampaignID: 1, Status: domain.URLStatusActive})
	store.PutURL(domain.URL{ID: 2, CampaignID: 1, Status: domain.URLStatusCompleted})
	store.PutURL(domain.URL{ID: 3, CampaignID: 2, Status: domain.URLStatusActive})

	urls, err := store.URLs().ListActive(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, int64(1), urls[0].ID)
}
