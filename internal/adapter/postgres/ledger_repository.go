package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spendguard/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository. The (campaign_id,
// url_id) primary key makes a second insert for the same URL a no-op, which
// is what keeps a replayed tick from billing twice.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Entries returns the campaign's ledger for the current cycle.
func (r *LedgerRepository) Entries(ctx context.Context, campaignID int64) ([]domain.BudgetLedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT url_id, campaign_id, contributed_budget, source, logged_at
        FROM budget_ledger
        WHERE campaign_id = $1
        ORDER BY logged_at, url_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BudgetLedgerEntry, error) {
		var (
			e      domain.BudgetLedgerEntry
			source string
		)
		err := row.Scan(&e.URLID, &e.CampaignID, &e.ContributedBudget, &source, &e.LoggedAt)
		e.Source = domain.LedgerSource(source)
		return e, err
	})
}

// Insert writes entries in one transaction and returns the URL ids that were
// new.
func (r *LedgerRepository) Insert(ctx context.Context, entries []domain.BudgetLedgerEntry) (inserted []int64, err error) {
	if len(entries) == 0 {
		return nil, nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`INSERT INTO budget_ledger (campaign_id, url_id, contributed_budget, source, logged_at)
VALUES ($1,$2,$3,$4,$5) ON CONFLICT (campaign_id, url_id) DO NOTHING`,
			e.CampaignID, e.URLID, e.ContributedBudget, string(e.Source), e.LoggedAt)
	}
	results := tx.SendBatch(ctx, batch)
	for _, e := range entries {
		tag, execErr := results.Exec()
		if execErr != nil {
			_ = results.Close()
			return nil, execErr
		}
		if tag.RowsAffected() > 0 {
			inserted = append(inserted, e.URLID)
		}
	}
	if err = results.Close(); err != nil {
		return nil, err
	}
	return inserted, nil
}

// Delete removes the entries of urlIDs.
func (r *LedgerRepository) Delete(ctx context.Context, campaignID int64, urlIDs []int64) (int64, error) {
	if len(urlIDs) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM budget_ledger WHERE campaign_id = $1 AND url_id = ANY($2)`, campaignID, urlIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Clear deletes the campaign's ledger.
func (r *LedgerRepository) Clear(ctx context.Context, campaignID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budget_ledger WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
