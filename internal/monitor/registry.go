package monitor

import (
	"sort"
	"sync"
	"time"
)

// Role names the job a campaign's monitor performs when it fires.
type Role string

const (
	RoleActiveChecker Role = "active_checker"
	RolePausedChecker Role = "paused_checker"
	RolePricingWait   Role = "pricing_wait"
	RoleBatchSweep    Role = "batch_sweep"
)

// Handle is one armed timer. A handle stays valid until it is replaced or
// cancelled; callbacks must check Registry.Current before acting.
type Handle struct {
	campaignID int64
	role       Role
	gen        uint64
	timer      *time.Timer
}

func (h *Handle) CampaignID() int64 { return h.campaignID }
func (h *Handle) Role() Role        { return h.role }

// Registry maps each campaign to at most one armed timer across all roles.
type Registry struct {
	mu      sync.Mutex
	handles map[int64]*Handle
	gen     uint64
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[int64]*Handle)}
}

// Arm cancels whatever timer the campaign had and arms a new one that calls
// fn after delay. The swap happens under the registry lock, so two timers for
// the same campaign never coexist.
func (r *Registry) Arm(campaignID int64, role Role, delay time.Duration, fn func(*Handle)) *Handle {
	if delay < 0 {
		delay = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.handles[campaignID]; ok {
		old.timer.Stop()
	}
	r.gen++
	h := &Handle{
		campaignID: campaignID,
		role:       role,
		gen:        r.gen,
	}
	h.timer = time.AfterFunc(delay, func() { fn(h) })
	r.handles[campaignID] = h
	return h
}

// Current reports whether h is still the armed handle for its campaign.
func (r *Registry) Current(h *Handle) bool {
	if h == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.handles[h.campaignID]
	return ok && cur.gen == h.gen
}

// Cancel stops and forgets the campaign's timer.
func (r *Registry) Cancel(campaignID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[campaignID]
	if !ok {
		return false
	}
	h.timer.Stop()
	delete(r.handles, campaignID)
	return true
}

// CancelAll stops every timer and returns how many were armed.
func (r *Registry) CancelAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.handles)
	for id, h := range r.handles {
		h.timer.Stop()
		delete(r.handles, id)
	}
	return n
}

// Armed returns the role of the campaign's timer, if any.
func (r *Registry) Armed(campaignID int64) (Role, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[campaignID]
	if !ok {
		return "", false
	}
	return h.role, true
}

// IDs returns the campaigns with an armed timer in ascending order.
func (r *Registry) IDs() []int64 {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.handles))
	for id := range r.handles {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}
