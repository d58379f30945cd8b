package port

import (
	"context"

	"spendguard/internal/core/domain"
)

// CampaignRepository persists monitored campaigns. Get returns nil, nil when
// the campaign does not exist. Implementations repair inverted thresholds on
// every write.
type CampaignRepository interface {
	// Get returns a campaign by id.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListMonitored returns campaigns with monitoring enabled that are not deleted.
	ListMonitored(ctx context.Context) ([]domain.Campaign, error)
	// Save writes the mutable controller fields of c.
	Save(ctx context.Context, c *domain.Campaign) error
}

// URLRepository reads the URLs owned by campaigns. Click counters are written
// by the redirect path, never here.
type URLRepository interface {
	// Get returns a URL by id, or nil, nil if unknown.
	Get(ctx context.Context, id int64) (*domain.URL, error)
	// ListActive returns the campaign's URLs with status active.
	ListActive(ctx context.Context, campaignID int64) ([]domain.URL, error)
}

// LedgerRepository stores one budget contribution per URL per spend cycle.
// The row itself is the dedup record, so it survives restarts.
type LedgerRepository interface {
	// Entries returns the campaign's ledger for the current cycle.
	Entries(ctx context.Context, campaignID int64) ([]domain.BudgetLedgerEntry, error)
	// Insert stores entries, skipping any URL already present, and returns
	// the ids of the URLs it wrote.
	Insert(ctx context.Context, entries []domain.BudgetLedgerEntry) ([]int64, error)
	// Delete removes the listed URLs' entries and returns how many were deleted.
	Delete(ctx context.Context, campaignID int64, urlIDs []int64) (int64, error)
	// Clear removes every entry of the campaign and returns how many were deleted.
	Clear(ctx context.Context, campaignID int64) (int64, error)
}
