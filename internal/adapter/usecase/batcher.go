package usecase

import (
	"sort"
	"sync"
	"time"

	"spendguard/internal/core/domain"
	"spendguard/internal/metrics"
)

// Batcher holds late URLs until they have been quiet for the batch wait, so
// that every URL added in a burst is folded into one remote budget update.
// Callers serialize per campaign; the mutex only protects the map itself.
type Batcher struct {
	mu      sync.Mutex
	pending map[int64]map[int64]domain.PendingBudgetUpdate
	total   int
	metrics *metrics.Metrics
}

func NewBatcher(m *metrics.Metrics) *Batcher {
	return &Batcher{
		pending: make(map[int64]map[int64]domain.PendingBudgetUpdate),
		metrics: m,
	}
}

// Enqueue queues u unless its URL is already pending. It reports whether u
// was added.
func (b *Batcher) Enqueue(u domain.PendingBudgetUpdate) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	byURL, ok := b.pending[u.CampaignID]
	if !ok {
		byURL = make(map[int64]domain.PendingBudgetUpdate)
		b.pending[u.CampaignID] = byURL
	}
	if _, exists := byURL[u.URLID]; exists {
		return false
	}
	byURL[u.URLID] = u
	b.setTotal(b.total + 1)
	return true
}

// Due returns the campaign's entries enqueued at least wait before now,
// oldest first. Younger entries are left out.
func (b *Batcher) Due(campaignID int64, now time.Time, wait time.Duration) []domain.PendingBudgetUpdate {
	b.mu.Lock()
	defer b.mu.Unlock()

	var due []domain.PendingBudgetUpdate
	for _, u := range b.pending[campaignID] {
		if now.Sub(u.EnqueuedAt) >= wait {
			due = append(due, u)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].EnqueuedAt.Equal(due[j].EnqueuedAt) {
			return due[i].URLID < due[j].URLID
		}
		return due[i].EnqueuedAt.Before(due[j].EnqueuedAt)
	})
	return due
}

// Remove drops flushed entries.
func (b *Batcher) Remove(campaignID int64, urlIDs ...int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byURL := b.pending[campaignID]
	removed := 0
	for _, id := range urlIDs {
		if _, ok := byURL[id]; ok {
			delete(byURL, id)
			removed++
		}
	}
	if len(byURL) == 0 {
		delete(b.pending, campaignID)
	}
	b.setTotal(b.total - removed)
}

// Discard drops every pending entry of the campaign without pricing it.
func (b *Batcher) Discard(campaignID int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.pending[campaignID])
	delete(b.pending, campaignID)
	b.setTotal(b.total - n)
	return n
}

// Pending returns how many entries the campaign has queued.
func (b *Batcher) Pending(campaignID int64) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending[campaignID])
}

func (b *Batcher) setTotal(n int) {
	b.total = n
	b.metrics.SetPendingURLs(n)
}
