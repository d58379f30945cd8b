package usecase

import (
	"context"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

// Ledger wraps the durable per-cycle budget record. A URL with an entry has
// been billed in this cycle and is never priced again until the cycle resets.
type Ledger struct {
	repo port.LedgerRepository
}

func NewLedger(repo port.LedgerRepository) *Ledger {
	return &Ledger{repo: repo}
}

// Priced returns the ids of URLs already billed in the current cycle.
func (l *Ledger) Priced(ctx context.Context, campaignID int64) (map[int64]struct{}, error) {
	entries, err := l.repo.Entries(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	priced := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		priced[e.URLID] = struct{}{}
	}
	return priced, nil
}

// Claim stores entries, skipping URLs that already have one, and returns the
// entries it wrote. Only claimed entries may be billed to the remote budget.
func (l *Ledger) Claim(ctx context.Context, entries []domain.BudgetLedgerEntry) ([]domain.BudgetLedgerEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	ids, err := l.repo.Insert(ctx, entries)
	if err != nil {
		return nil, err
	}
	written := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		written[id] = struct{}{}
	}
	claimed := make([]domain.BudgetLedgerEntry, 0, len(ids))
	for _, e := range entries {
		if _, ok := written[e.URLID]; ok {
			claimed = append(claimed, e)
		}
	}
	return claimed, nil
}

// Release removes claimed entries whose budget never reached the ad network.
func (l *Ledger) Release(ctx context.Context, campaignID int64, claimed []domain.BudgetLedgerEntry) error {
	if len(claimed) == 0 {
		return nil
	}
	ids := make([]int64, len(claimed))
	for i, e := range claimed {
		ids[i] = e.URLID
	}
	_, err := l.repo.Delete(ctx, campaignID, ids)
	return err
}

// Reset forgets the campaign's cycle.
func (l *Ledger) Reset(ctx context.Context, campaignID int64) (int64, error) {
	return l.repo.Clear(ctx, campaignID)
}
