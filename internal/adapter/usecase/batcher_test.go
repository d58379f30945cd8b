package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendguard/internal/adapter/memory"
	"spendguard/internal/core/domain"
)

func pending(campaignID, urlID int64, at time.Time) domain.PendingBudgetUpdate {
	return domain.PendingBudgetUpdate{
		URLID:             urlID,
		CampaignID:        campaignID,
		ContributedBudget: decimal.NewFromInt(urlID),
		EnqueuedAt:        at,
	}
}

func TestBatcherEnqueueDedupsPerURL(t *testing.T) {
	b := NewBatcher(nil)

	assert.True(t, b.Enqueue(pending(1, 10, t0)))
	assert.False(t, b.Enqueue(pending(1, 10, t0.Add(time.Minute))))
	assert.True(t, b.Enqueue(pending(2, 10, t0)))

	assert.Equal(t, 1, b.Pending(1))
	assert.Equal(t, 1, b.Pending(2))

	// The first enqueue time is kept.
	due := b.Due(1, t0.Add(9*time.Minute), 9*time.Minute)
	require.Len(t, due, 1)
	assert.True(t, due[0].EnqueuedAt.Equal(t0))
}

func TestBatcherDueLeavesYoungEntries(t *testing.T) {
	b := NewBatcher(nil)
	b.Enqueue(pending(1, 12, t0.Add(2*time.Minute)))
	b.Enqueue(pending(1, 11, t0))
	b.Enqueue(pending(1, 10, t0))
	b.Enqueue(pending(1, 13, t0.Add(5*time.Minute)))

	due := b.Due(1, t0.Add(11*time.Minute), 9*time.Minute)
	require.Len(t, due, 3)
	assert.Equal(t, []int64{10, 11, 12}, []int64{due[0].URLID, due[1].URLID, due[2].URLID})

	b.Remove(1, 10, 11, 12)
	assert.Equal(t, 1, b.Pending(1))
	assert.Empty(t, b.Due(1, t0.Add(11*time.Minute), 9*time.Minute))
}

func TestBatcherDiscard(t *testing.T) {
	b := NewBatcher(nil)
	b.Enqueue(pending(1, 10, t0))
	b.Enqueue(pending(1, 11, t0))
	b.Enqueue(pending(2, 12, t0))

	assert.Equal(t, 2, b.Discard(1))
	assert.Equal(t, 0, b.Pending(1))
	assert.Equal(t, 1, b.Pending(2))
	assert.Zero(t, b.Discard(1))

	// A discarded URL can be queued again in a later cycle.
	assert.True(t, b.Enqueue(pending(1, 10, t0.Add(time.Hour))))
}

func TestInventoryRemaining(t *testing.T) {
	store := memory.NewStore()
	store.PutURL(domain.URL{ID: 1, CampaignID: 1, ClickLimit: 900, Clicks: 100, Status: domain.URLStatusActive})
	store.PutURL(domain.URL{ID: 2, CampaignID: 1, ClickLimit: 500, Clicks: 700, Status: domain.URLStatusActive})
	store.PutURL(domain.URL{ID: 3, CampaignID: 1, ClickLimit: 5000, Status: domain.URLStatusPaused})
	store.PutURL(domain.URL{ID: 4, CampaignID: 2, ClickLimit: 5000, Status: domain.URLStatusActive})

	remaining, err := NewInventory(store.URLs()).Remaining(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(800), remaining)
}

func TestLedgerClaimSkipsPricedURLs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	l := NewLedger(store.Ledger())

	entry := domain.BudgetLedgerEntry{URLID: 1, CampaignID: 1, ContributedBudget: decimal.RequireFromString("4.50"), Source: domain.LedgerSourceInitial, LoggedAt: t0}
	other := entry
	other.URLID = 2
	claimed, err := l.Claim(ctx, []domain.BudgetLedgerEntry{entry})
	require.NoError(t, err)
	assert.Equal(t, []domain.BudgetLedgerEntry{entry}, claimed)

	claimed, err = l.Claim(ctx, []domain.BudgetLedgerEntry{entry, other})
	require.NoError(t, err)
	assert.Equal(t, []domain.BudgetLedgerEntry{other}, claimed)

	require.NoError(t, l.Release(ctx, 1, claimed))
	priced, err := l.Priced(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{1: {}}, priced)

	cleared, err := l.Reset(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	priced, err = l.Priced(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, priced)
}
