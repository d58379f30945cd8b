package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RemoteStatus is the run state reported by the ad network.
type RemoteStatus string

const (
	RemoteStatusActive RemoteStatus = "active"
	RemoteStatusPaused RemoteStatus = "paused"
)

// RemoteCampaign is the ad network's view of a campaign.
type RemoteCampaign struct {
	Budget decimal.Decimal
	Active bool
}

// AdNetwork drives a campaign on the third-party ad network. Every call is
// idempotent: activating an active campaign succeeds as a no-op. Failures are
// wrapped with domain.ErrTransientIO.
type AdNetwork interface {
	Campaign(ctx context.Context, remoteID string) (RemoteCampaign, error)
	// UpdateBudget overwrites the remote daily budget. Callers always pass
	// the current budget plus an increment.
	UpdateBudget(ctx context.Context, remoteID string, budget decimal.Decimal) error
	UpdateEndTime(ctx context.Context, remoteID string, end time.Time) error
	Activate(ctx context.Context, remoteID string) error
	Pause(ctx context.Context, remoteID string) error
	Status(ctx context.Context, remoteID string) (RemoteStatus, error)
}

// SpendReporter returns today's cumulative spend of a remote campaign.
type SpendReporter interface {
	DailySpent(ctx context.Context, remoteID string) (decimal.Decimal, error)
}

// Locker guards a campaign across replicas. TryLock returns a token that
// must be passed to Release.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key, token string) error
}
