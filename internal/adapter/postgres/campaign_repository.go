package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spendguard/internal/core/domain"
)

const campaignColumns = `
            id,
            remote_id,
            name,
            price_per_thousand,
            state,
            last_transition_at,
            low_pause,
            low_activate,
            high_pause,
            high_activate,
            waiting_since,
            high_spend_calc_at,
            daily_spent,
            monitoring_enabled,
            deleted_at,
            created_at,
            updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Get returns a campaign by id, or nil if it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListMonitored returns campaigns that have monitoring enabled and are not deleted.
func (r *CampaignRepository) ListMonitored(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
        FROM campaigns
        WHERE monitoring_enabled AND deleted_at IS NULL
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// Save writes the controller-owned columns of c. Thresholds are repaired
// before the write so the stored row always satisfies the 15% gap.
func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign) error {
	c.Thresholds, _ = c.Thresholds.Repair()

	err := r.pool.QueryRow(ctx, `UPDATE campaigns SET
            state = $2,
            last_transition_at = $3,
            low_pause = $4,
            low_activate = $5,
            high_pause = $6,
            high_activate = $7,
            waiting_since = $8,
            high_spend_calc_at = $9,
            daily_spent = $10,
            updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		c.ID,
		string(c.State),
		c.LastTransitionAt,
		c.Thresholds.LowPause,
		c.Thresholds.LowActivate,
		c.Thresholds.HighPause,
		c.Thresholds.HighActivate,
		c.WaitingSince,
		c.HighSpendCalcAt,
		c.DailySpent,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCampaignNotFound
	}
	return err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c     domain.Campaign
		state string
	)
	err := row.Scan(
		&c.ID,
		&c.RemoteID,
		&c.Name,
		&c.PricePerThousand,
		&state,
		&c.LastTransitionAt,
		&c.Thresholds.LowPause,
		&c.Thresholds.LowActivate,
		&c.Thresholds.HighPause,
		&c.Thresholds.HighActivate,
		&c.WaitingSince,
		&c.HighSpendCalcAt,
		&c.DailySpent,
		&c.MonitoringEnabled,
		&c.DeletedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.State = domain.State(state)
	return c, err
}
