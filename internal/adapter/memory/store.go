package memory

import (
	"context"
	"sort"
	"sync"

	"spendguard/internal/core/domain"
)

// Store is an in-process implementation of the campaign, URL and ledger
// repositories. It backs tests and dry runs without a database.
type Store struct {
	mu        sync.RWMutex
	campaigns map[int64]domain.Campaign
	urls      map[int64]domain.URL
	ledger    map[int64]map[int64]domain.BudgetLedgerEntry
}

func NewStore() *Store {
	return &Store{
		campaigns: make(map[int64]domain.Campaign),
		urls:      make(map[int64]domain.URL),
		ledger:    make(map[int64]map[int64]domain.BudgetLedgerEntry),
	}
}

// Campaigns returns the store as a port.CampaignRepository.
func (s *Store) Campaigns() *CampaignRepository { return &CampaignRepository{s: s} }

// URLs returns the store as a port.URLRepository.
func (s *Store) URLs() *URLRepository { return &URLRepository{s: s} }

// Ledger returns the store as a port.LedgerRepository.
func (s *Store) Ledger() *LedgerRepository { return &LedgerRepository{s: s} }

// PutCampaign inserts or replaces a campaign as is, without repairing thresholds.
func (s *Store) PutCampaign(c domain.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns[c.ID] = c
}

// PutURL inserts or replaces a URL.
func (s *Store) PutURL(u domain.URL) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.urls[u.ID] = u
}

// SetClicks sets the click counter of a URL, as the redirect path would.
func (s *Store) SetClicks(urlID, clicks int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.urls[urlID]; ok {
		u.Clicks = clicks
		s.urls[urlID] = u
	}
}

type CampaignRepository struct{ s *Store }

func (r *CampaignRepository) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CampaignRepository) ListMonitored(_ context.Context) ([]domain.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.s.campaigns))
	for _, c := range r.s.campaigns {
		if c.Monitored() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CampaignRepository) Save(_ context.Context, c *domain.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.campaigns[c.ID]; !ok {
		return domain.ErrCampaignNotFound
	}
	saved := *c
	saved.Thresholds, _ = saved.Thresholds.Repair()
	r.s.campaigns[c.ID] = saved
	return nil
}

type URLRepository struct{ s *Store }

func (r *URLRepository) Get(_ context.Context, id int64) (*domain.URL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.urls[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *URLRepository) ListActive(_ context.Context, campaignID int64) ([]domain.URL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.URL
	for _, u := range r.s.urls {
		if u.CampaignID == campaignID && u.Active() {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type LedgerRepository struct{ s *Store }

func (r *LedgerRepository) Entries(_ context.Context, campaignID int64) ([]domain.BudgetLedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]domain.BudgetLedgerEntry, 0, len(r.s.ledger[campaignID]))
	for _, e := range r.s.ledger[campaignID] {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URLID < out[j].URLID })
	return out, nil
}

func (r *LedgerRepository) Insert(_ context.Context, entries []domain.BudgetLedgerEntry) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var inserted []int64
	for _, e := range entries {
		byURL, ok := r.s.ledger[e.CampaignID]
		if !ok {
			byURL = make(map[int64]domain.BudgetLedgerEntry)
			r.s.ledger[e.CampaignID] = byURL
		}
		if _, exists := byURL[e.URLID]; exists {
			continue
		}
		byURL[e.URLID] = e
		inserted = append(inserted, e.URLID)
	}
	return inserted, nil
}

func (r *LedgerRepository) Delete(_ context.Context, campaignID int64, urlIDs []int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	byURL := r.s.ledger[campaignID]
	var n int64
	for _, id := range urlIDs {
		if _, ok := byURL[id]; ok {
			delete(byURL, id)
			n++
		}
	}
	return n, nil
}

func (r *LedgerRepository) Clear(_ context.Context, campaignID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.ledger[campaignID]))
	delete(r.s.ledger, campaignID)
	return n, nil
}
