package port

import (
	"context"

	"spendguard/internal/core/domain"
)

// CampaignController is the primary port into the spend controller. Mock
// implementations can be generated from this interface for testing.
type CampaignController interface {
	// Evaluate runs one tick for the campaign now and returns the state it
	// landed in. On adapter failure the state is unchanged and the error
	// is returned.
	Evaluate(ctx context.Context, campaignID int64) (domain.State, error)

	// NotifyURLAdded registers a newly created URL. Late URLs are queued for
	// the next batch; others are picked up by regular pricing.
	NotifyURLAdded(ctx context.Context, campaignID, urlID int64) error

	// State returns the campaign's current lifecycle state.
	State(ctx context.Context, campaignID int64) (domain.State, error)

	// Teardown cancels the campaign's monitor and drops its pending batch.
	Teardown(campaignID int64)
}
