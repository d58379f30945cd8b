package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spendguard/internal/core/domain"
)

// URLRepository implements port.URLRepository using pgxpool.
type URLRepository struct {
	pool *pgxpool.Pool
}

func NewURLRepository(pool *pgxpool.Pool) *URLRepository {
	return &URLRepository{pool: pool}
}

// Get returns a URL by id.
func (r *URLRepository) Get(ctx context.Context, id int64) (*domain.URL, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, target, click_limit, clicks, status, created_at FROM urls WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	u, err := pgx.CollectOneRow(rows, scanURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActive returns the campaign's active URLs, oldest first.
func (r *URLRepository) ListActive(ctx context.Context, campaignID int64) ([]domain.URL, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, target, click_limit, clicks, status, created_at
        FROM urls
        WHERE campaign_id = $1 AND status = 'active'
        ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanURL)
}

func scanURL(row pgx.CollectableRow) (domain.URL, error) {
	var (
		u      domain.URL
		status string
	)
	err := row.Scan(&u.ID, &u.CampaignID, &u.Target, &u.ClickLimit, &u.Clicks, &status, &u.CreatedAt)
	u.Status = domain.URLStatus(status)
	return u, err
}
