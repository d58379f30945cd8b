package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSource records which path priced a URL.
type LedgerSource string

const (
	LedgerSourceInitial LedgerSource = "initial"
	LedgerSourceBatch   LedgerSource = "batch"
)

// BudgetLedgerEntry is the single budget contribution of a URL within one
// spend cycle. Its existence is the dedup check.
type BudgetLedgerEntry struct {
	URLID             int64
	CampaignID        int64
	ContributedBudget decimal.Decimal
	Source            LedgerSource
	LoggedAt          time.Time
}

// PendingBudgetUpdate is a late URL waiting for its batch to flush.
type PendingBudgetUpdate struct {
	URLID             int64
	CampaignID        int64
	ContributedBudget decimal.Decimal
	EnqueuedAt        time.Time
}

// Entry converts a flushed update into its ledger entry.
func (p PendingBudgetUpdate) Entry(at time.Time) BudgetLedgerEntry {
	return BudgetLedgerEntry{
		URLID:             p.URLID,
		CampaignID:        p.CampaignID,
		ContributedBudget: p.ContributedBudget,
		Source:            LedgerSourceBatch,
		LoggedAt:          at,
	}
}
