package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"spendguard/internal/core/domain"
)

const (
	demoCampaigns       = 5
	demoURLsPerCampaign = 4
)

// Demo builds the demo campaigns and their URLs. Remote ids are derived from
// the campaign id so repeated seeding targets the same rows.
func Demo(th domain.Thresholds, now time.Time) ([]domain.Campaign, []domain.URL) {
	r := rand.New(rand.NewSource(now.UnixNano()))

	campaigns := make([]domain.Campaign, 0, demoCampaigns)
	urls := make([]domain.URL, 0, demoCampaigns*demoURLsPerCampaign)
	for i := int64(1); i <= demoCampaigns; i++ {
		campaigns = append(campaigns, domain.Campaign{
			ID:                i,
			RemoteID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("spendguard/demo/%d", i))).String(),
			Name:              fmt.Sprintf("Campaign %d", i),
			PricePerThousand:  decimal.NewFromInt(int64(2 + r.Intn(6))),
			State:             domain.StateUnknown,
			Thresholds:        th,
			MonitoringEnabled: true,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
		for j := int64(1); j <= demoURLsPerCampaign; j++ {
			id := (i-1)*demoURLsPerCampaign + j
			limit := int64(1000 * (1 + r.Intn(10)))
			urls = append(urls, domain.URL{
				ID:         id,
				CampaignID: i,
				Target:     fmt.Sprintf("https://example.com/landing/%d", id),
				ClickLimit: limit,
				Clicks:     r.Int63n(limit),
				Status:     domain.URLStatusActive,
				CreatedAt:  now.Add(-time.Duration(r.Intn(48)) * time.Hour),
			})
		}
	}
	return campaigns, urls
}

// Seed inserts the demo campaigns and URLs. Existing rows are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool, th domain.Thresholds) error {
	campaigns, urls := Demo(th, time.Now().UTC())

	for _, c := range campaigns {
		fixed, _ := c.Thresholds.Repair()
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, remote_id, name, price_per_thousand, state, low_pause, low_activate, high_pause, high_activate,
     monitoring_enabled, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11) ON CONFLICT DO NOTHING`,
			c.ID, c.RemoteID, c.Name, c.PricePerThousand, string(c.State),
			fixed.LowPause, fixed.LowActivate, fixed.HighPause, fixed.HighActivate,
			c.MonitoringEnabled, c.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.ID, err)
		}
	}
	for _, u := range urls {
		_, err := db.Exec(ctx, `INSERT INTO urls
(id, campaign_id, target, click_limit, clicks, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			u.ID, u.CampaignID, u.Target, u.ClickLimit, u.Clicks, string(u.Status), u.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed url %d: %w", u.ID, err)
		}
	}

	// Explicit ids bypass the sequences.
	for _, table := range []string{"campaigns", "urls"} {
		_, err := db.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT max(id) FROM %[1]s), 1))`, table))
		if err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}
	return nil
}
