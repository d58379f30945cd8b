package usecase

import (
	"context"

	"spendguard/internal/core/port"
)

// Inventory sums the clicks a campaign's active URLs still owe. It reads the
// repository on every call because clicks land continuously.
type Inventory struct {
	urls port.URLRepository
}

func NewInventory(urls port.URLRepository) *Inventory {
	return &Inventory{urls: urls}
}

// Remaining returns the sum of max(clickLimit - clicks, 0) over active URLs.
func (i *Inventory) Remaining(ctx context.Context, campaignID int64) (int64, error) {
	urls, err := i.urls.ListActive(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	var total int64
	for idx := range urls {
		total += urls[idx].Remaining()
	}
	return total, nil
}
