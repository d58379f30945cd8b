package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"spendguard/internal/clock"
	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
	"spendguard/internal/lock"
	"spendguard/internal/metrics"
	"spendguard/internal/monitor"
)

var ErrInvalidConfig = errors.New("controller: missing dependency")

// Params holds the controller's collaborators. Locker, Metrics and Clock are
// optional.
type Params struct {
	Campaigns port.CampaignRepository
	URLs      port.URLRepository
	Ledger    port.LedgerRepository
	Spend     port.SpendReporter
	Network   port.AdNetwork
	Locker    port.Locker
	Metrics   *metrics.Metrics
	Clock     clock.Clock
	Logger    *slog.Logger
	Config    Config
}

// Controller decides, per campaign, whether the remote campaign runs and how
// much budget it gets. Every operation on a campaign holds that campaign's
// lock for its whole evaluate, decide, call, persist sequence, and the
// campaign never has more than one armed monitor.
type Controller struct {
	campaigns port.CampaignRepository
	urls      port.URLRepository
	spend     port.SpendReporter
	network   port.AdNetwork
	locker    port.Locker
	ledger    *Ledger
	inventory *Inventory
	batcher   *Batcher
	locks     *monitor.KeyedMutex
	monitors  *monitor.Registry
	metrics   *metrics.Metrics
	clock     clock.Clock
	cfg       Config
	logger    *slog.Logger

	// lifecycle guards closed and the in-flight count, so no fire can start
	// once Shutdown has begun waiting.
	lifecycle sync.Mutex
	closed    bool
	inflight  sync.WaitGroup
}

var _ port.CampaignController = (*Controller)(nil)

func NewController(p Params) (*Controller, error) {
	if p.Campaigns == nil || p.URLs == nil || p.Ledger == nil || p.Spend == nil || p.Network == nil || p.Logger == nil {
		return nil, ErrInvalidConfig
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.System()
	}
	return &Controller{
		campaigns: p.Campaigns,
		urls:      p.URLs,
		spend:     p.Spend,
		network:   p.Network,
		locker:    p.Locker,
		ledger:    NewLedger(p.Ledger),
		inventory: NewInventory(p.URLs),
		batcher:   NewBatcher(p.Metrics),
		locks:     monitor.NewKeyedMutex(),
		monitors:  monitor.NewRegistry(),
		metrics:   p.Metrics,
		clock:     clk,
		cfg:       p.Config.withDefaults(),
		logger:    p.Logger.With(slog.String("component", "controller")),
	}, nil
}

// Evaluate runs one tick for the campaign now.
func (c *Controller) Evaluate(ctx context.Context, campaignID int64) (domain.State, error) {
	unlock := c.locks.Lock(campaignID)
	defer unlock()
	return c.tickLocked(ctx, campaignID)
}

// Sweep flushes the campaign's due batch entries without evaluating it.
func (c *Controller) Sweep(ctx context.Context, campaignID int64) error {
	unlock := c.locks.Lock(campaignID)
	defer unlock()

	camp, err := c.load(ctx, campaignID)
	if err != nil {
		return err
	}
	return c.sweepLocked(ctx, camp)
}

// NotifyURLAdded queues a URL created after the cycle's initial pricing.
// URLs that are not late are left to regular pricing.
func (c *Controller) NotifyURLAdded(ctx context.Context, campaignID, urlID int64) error {
	unlock := c.locks.Lock(campaignID)
	defer unlock()

	camp, err := c.load(ctx, campaignID)
	if err != nil {
		return err
	}
	u, err := c.urls.Get(ctx, urlID)
	if err != nil {
		return fmt.Errorf("load url: %w", err)
	}
	if u == nil || u.CampaignID != campaignID {
		return domain.ErrURLNotFound
	}
	if !camp.State.HighRegime() {
		return nil
	}
	priced, err := c.ledger.Priced(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	if c.queueLate(camp, u, priced, c.clock.Now()) {
		c.rearm(camp, false)
	}
	return nil
}

// State returns the persisted lifecycle state of the campaign.
func (c *Controller) State(ctx context.Context, campaignID int64) (domain.State, error) {
	camp, err := c.load(ctx, campaignID)
	if err != nil {
		return domain.StateUnknown, err
	}
	return camp.State, nil
}

// Watch arms an immediate tick for a campaign that has no monitor yet and
// reports whether it did.
func (c *Controller) Watch(campaignID int64) bool {
	unlock := c.locks.Lock(campaignID)
	defer unlock()

	if _, ok := c.monitors.Armed(campaignID); ok {
		return false
	}
	return c.arm(campaignID, monitor.RolePausedChecker, 0)
}

// Teardown cancels the campaign's monitor and discards its pending batch.
func (c *Controller) Teardown(campaignID int64) {
	unlock := c.locks.Lock(campaignID)
	defer unlock()
	c.teardownLocked(campaignID)
}

// Monitored returns the campaigns that currently have an armed monitor.
func (c *Controller) Monitored() []int64 {
	return c.monitors.IDs()
}

// Monitor returns the role of the campaign's armed timer.
func (c *Controller) Monitor(campaignID int64) (monitor.Role, bool) {
	return c.monitors.Armed(campaignID)
}

// Pending returns the number of late URLs queued for the campaign.
func (c *Controller) Pending(campaignID int64) int {
	return c.batcher.Pending(campaignID)
}

// Shutdown cancels every monitor and waits for ticks already running. No
// timer is armed afterwards.
func (c *Controller) Shutdown() {
	c.lifecycle.Lock()
	c.closed = true
	c.lifecycle.Unlock()

	n := c.monitors.CancelAll()
	c.metrics.SetArmedMonitors(0)
	c.inflight.Wait()
	c.logger.Info("monitors cancelled", slog.Int("count", n))
}

func (c *Controller) isClosed() bool {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	return c.closed
}

// enter registers a monitor fire with Shutdown. It reports false once the
// controller is shut down.
func (c *Controller) enter() bool {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()
	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

func (c *Controller) fire(h *monitor.Handle) {
	if !c.enter() {
		return
	}
	defer c.inflight.Done()

	id := h.CampaignID()
	runID := uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.TickTimeout)
	defer cancel()

	unlock := c.locks.Lock(id)
	defer unlock()
	defer func() {
		if r := recover(); r != nil {
			c.metrics.IncTickPanic()
			c.logger.Error("campaign tick panicked",
				slog.Int64("campaign_id", id),
				slog.String("run_id", runID),
				slog.String("role", string(h.Role())),
				slog.Any("panic", r))
			if c.monitors.Current(h) {
				c.arm(id, monitor.RolePausedChecker, c.cfg.PausedCheckInterval)
			}
		}
	}()

	if !c.monitors.Current(h) {
		return
	}
	if _, err := c.tickLocked(ctx, id); err != nil {
		c.logger.Warn("campaign tick failed",
			slog.Int64("campaign_id", id),
			slog.String("run_id", runID),
			slog.String("role", string(h.Role())),
			slog.Any("error", err))
	}
}

// tickLocked evaluates the campaign, flushes its due batch and re-arms its
// monitor. The caller holds the campaign lock.
func (c *Controller) tickLocked(ctx context.Context, id int64) (domain.State, error) {
	start := time.Now()
	defer func() { c.metrics.ObserveTick(time.Since(start)) }()

	release, ok := c.acquire(ctx, id)
	if !ok {
		camp, err := c.load(ctx, id)
		if err != nil {
			return domain.StateUnknown, err
		}
		c.rearm(camp, false)
		return camp.State, nil
	}
	defer release()

	camp, remoteActive, err := c.evaluateLocked(ctx, id)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		c.teardownLocked(id)
		return domain.StateUnknown, err
	}
	if camp == nil {
		if _, armed := c.monitors.Armed(id); armed {
			c.arm(id, monitor.RolePausedChecker, c.cfg.PausedCheckInterval)
		}
		return domain.StateUnknown, err
	}
	if sweepErr := c.sweepLocked(ctx, camp); sweepErr != nil && err == nil {
		err = sweepErr
	}
	c.rearm(camp, remoteActive)
	return camp.State, err
}

// evaluateLocked performs at most one transition. It returns the campaign as
// it now stands and, in the low regime, whether the remote campaign runs.
func (c *Controller) evaluateLocked(ctx context.Context, id int64) (*domain.Campaign, bool, error) {
	camp, err := c.load(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !camp.Monitored() {
		return camp, false, nil
	}
	if !camp.State.Valid() {
		camp.State = domain.StateUnknown
	}
	c.repairThresholds(camp)

	now := c.clock.Now()
	c.refreshSpend(ctx, camp)
	high := camp.DailySpent.GreaterThanOrEqual(c.cfg.HighSpendBoundary)

	switch prev := camp.State; {
	case !high && prev.HighRegime():
		return camp, false, c.resetCycle(ctx, camp, now)
	case high && !prev.HighRegime():
		return camp, false, c.enterWaiting(ctx, camp, now)
	case prev == domain.StateHighSpendWaiting:
		return camp, false, c.awaitPricing(ctx, camp, now)
	case high:
		c.enqueueLate(ctx, camp, now)
		return camp, false, c.evaluateHigh(ctx, camp, now)
	default:
		active, err := c.evaluateLow(ctx, camp, now)
		return camp, active, err
	}
}

func (c *Controller) refreshSpend(ctx context.Context, camp *domain.Campaign) {
	spent, err := c.spend.DailySpent(ctx, camp.RemoteID)
	if err != nil {
		c.metrics.IncAdapterError("daily_spent")
		c.logger.Warn("spend read failed, keeping cached value",
			slog.Int64("campaign_id", camp.ID),
			slog.String("cached", camp.DailySpent.StringFixed(2)),
			slog.Any("error", err))
		return
	}
	camp.DailySpent = spent
}

func (c *Controller) repairThresholds(camp *domain.Campaign) {
	repaired, changed := camp.Thresholds.Repair()
	if !changed {
		return
	}
	c.metrics.IncThresholdRepair()
	c.logger.Warn("widening activate threshold",
		slog.Int64("campaign_id", camp.ID),
		slog.Any("error", domain.ErrThresholdsInverted),
		slog.Any("before", camp.Thresholds),
		slog.Any("after", repaired))
	camp.Thresholds = repaired
}

// enterWaiting starts a new spend cycle: the campaign is paused until its
// in-flight clicks have landed and it can be priced.
func (c *Controller) enterWaiting(ctx context.Context, camp *domain.Campaign, now time.Time) error {
	if _, err := c.ledger.Reset(ctx, camp.ID); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	c.batcher.Discard(camp.ID)

	if err := c.network.Pause(ctx, camp.RemoteID); err != nil {
		return c.adapterFailed(camp, "pause", domain.StateHighSpendWaiting, err)
	}
	camp.ResetCycle()
	since := now
	camp.WaitingSince = &since
	c.transition(camp, domain.StateHighSpendWaiting, now)
	return c.save(ctx, camp)
}

func (c *Controller) awaitPricing(ctx context.Context, camp *domain.Campaign, now time.Time) error {
	if camp.WaitingSince == nil {
		since := now
		camp.WaitingSince = &since
		return c.save(ctx, camp)
	}
	if now.Sub(*camp.WaitingSince) < c.cfg.InitialPricingWait {
		return c.save(ctx, camp)
	}
	return c.priceInitial(ctx, camp, now)
}

// priceInitial bills every URL known at the pricing instant on its remaining
// clicks, then reactivates the campaign. Each step is safe to replay: URLs
// with a ledger entry are skipped and the remote calls are idempotent.
func (c *Controller) priceInitial(ctx context.Context, camp *domain.Campaign, now time.Time) error {
	calcAt := now
	if camp.HighSpendCalcAt != nil {
		calcAt = *camp.HighSpendCalcAt
	}

	urls, err := c.urls.ListActive(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("list urls: %w", err)
	}
	priced, err := c.ledger.Priced(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	var entries []domain.BudgetLedgerEntry
	for i := range urls {
		u := &urls[i]
		if u.LateFor(&calcAt) {
			continue
		}
		if _, ok := priced[u.ID]; ok {
			continue
		}
		entries = append(entries, domain.BudgetLedgerEntry{
			URLID:             u.ID,
			CampaignID:        camp.ID,
			ContributedBudget: camp.PriceFor(u.Remaining()),
			Source:            domain.LedgerSourceInitial,
			LoggedAt:          now,
		})
	}

	if err = c.bill(ctx, camp, entries, metrics.SourceInitial, domain.StateHighSpendBudgetUpdated); err != nil {
		return err
	}
	camp.HighSpendCalcAt = &calcAt
	if err = c.save(ctx, camp); err != nil {
		return err
	}

	if err = c.network.UpdateEndTime(ctx, camp.RemoteID, domain.EndOfDay(now)); err != nil {
		return c.adapterFailed(camp, "update_end_time", domain.StateHighSpendBudgetUpdated, err)
	}
	if err = c.network.Activate(ctx, camp.RemoteID); err != nil {
		return c.adapterFailed(camp, "activate", domain.StateHighSpendBudgetUpdated, err)
	}
	c.transition(camp, domain.StateHighSpendBudgetUpdated, now)
	if err = c.save(ctx, camp); err != nil {
		return err
	}
	return c.evaluateHigh(ctx, camp, now)
}

func (c *Controller) evaluateHigh(ctx context.Context, camp *domain.Campaign, now time.Time) error {
	remaining, err := c.inventory.Remaining(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("remaining clicks: %w", err)
	}
	band := camp.Thresholds.Band(true)

	switch camp.State {
	case domain.StateHighSpend, domain.StateHighSpendBudgetUpdated:
		if remaining < band.Pause {
			if err = c.network.Pause(ctx, camp.RemoteID); err != nil {
				return c.adapterFailed(camp, "pause", domain.StateHighSpendPausedLowClicks, err)
			}
			c.transition(camp, domain.StateHighSpendPausedLowClicks, now)
		} else {
			c.transition(camp, domain.StateHighSpend, now)
		}
	case domain.StateHighSpendPausedLowClicks:
		if remaining >= band.Activate {
			if err = c.network.Activate(ctx, camp.RemoteID); err != nil {
				return c.adapterFailed(camp, "activate", domain.StateHighSpend, err)
			}
			c.transition(camp, domain.StateHighSpend, now)
		}
	}
	return c.save(ctx, camp)
}

// evaluateLow applies the low regime band against the remote run state.
func (c *Controller) evaluateLow(ctx context.Context, camp *domain.Campaign, now time.Time) (bool, error) {
	remaining, err := c.inventory.Remaining(ctx, camp.ID)
	if err != nil {
		return false, fmt.Errorf("remaining clicks: %w", err)
	}
	status, err := c.network.Status(ctx, camp.RemoteID)
	if err != nil {
		return false, c.adapterFailed(camp, "status", domain.StateLowSpend, err)
	}
	active := status == port.RemoteStatusActive
	band := camp.Thresholds.Band(false)

	switch {
	case !active && remaining >= band.Activate:
		if err = c.network.Activate(ctx, camp.RemoteID); err != nil {
			return false, c.adapterFailed(camp, "activate", domain.StateLowSpend, err)
		}
		active = true
		c.logger.Info("remote campaign activated",
			slog.Int64("campaign_id", camp.ID),
			slog.Int64("remaining", remaining))
	case active && remaining < band.Pause:
		if err = c.network.Pause(ctx, camp.RemoteID); err != nil {
			return true, c.adapterFailed(camp, "pause", domain.StateLowSpend, err)
		}
		active = false
		c.logger.Info("remote campaign paused",
			slog.Int64("campaign_id", camp.ID),
			slog.Int64("remaining", remaining))
	}
	c.transition(camp, domain.StateLowSpend, now)
	return active, c.save(ctx, camp)
}

// resetCycle forgets everything priced since spend crossed the boundary.
func (c *Controller) resetCycle(ctx context.Context, camp *domain.Campaign, now time.Time) error {
	cleared, err := c.ledger.Reset(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}
	discarded := c.batcher.Discard(camp.ID)
	camp.ResetCycle()
	c.transition(camp, domain.StateLowSpend, now)
	c.metrics.IncCycleReset()
	c.logger.Info("spend cycle reset",
		slog.Int64("campaign_id", camp.ID),
		slog.String("spend", camp.DailySpent.StringFixed(2)),
		slog.Int64("ledger_cleared", cleared),
		slog.Int("pending_discarded", discarded))
	return c.save(ctx, camp)
}

// enqueueLate re-scans for late URLs so a lost notification or a restart
// does not leave one unbilled.
func (c *Controller) enqueueLate(ctx context.Context, camp *domain.Campaign, now time.Time) {
	if camp.HighSpendCalcAt == nil {
		return
	}
	urls, err := c.urls.ListActive(ctx, camp.ID)
	if err != nil {
		c.logger.Warn("late url scan failed", slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
		return
	}
	priced, err := c.ledger.Priced(ctx, camp.ID)
	if err != nil {
		c.logger.Warn("late url scan failed", slog.Int64("campaign_id", camp.ID), slog.Any("error", err))
		return
	}
	for i := range urls {
		c.queueLate(camp, &urls[i], priced, now)
	}
}

func (c *Controller) queueLate(camp *domain.Campaign, u *domain.URL, priced map[int64]struct{}, now time.Time) bool {
	if !u.Active() || !u.LateFor(camp.HighSpendCalcAt) {
		return false
	}
	if _, ok := priced[u.ID]; ok {
		return false
	}
	added := c.batcher.Enqueue(domain.PendingBudgetUpdate{
		URLID:             u.ID,
		CampaignID:        camp.ID,
		ContributedBudget: camp.PriceFor(u.ClickLimit),
		EnqueuedAt:        now,
	})
	if added {
		c.logger.Info("late url queued",
			slog.Int64("campaign_id", camp.ID),
			slog.Int64("url_id", u.ID),
			slog.Int64("click_limit", u.ClickLimit))
	}
	return added
}

// sweepLocked flushes entries that have waited out the batch window with one
// budget read and one budget update for the whole batch. Entries whose URL
// left inventory while queued are dropped unpriced.
func (c *Controller) sweepLocked(ctx context.Context, camp *domain.Campaign) error {
	if c.batcher.Pending(camp.ID) == 0 {
		return nil
	}
	if !camp.State.HighRegime() {
		c.batcher.Discard(camp.ID)
		return nil
	}

	now := c.clock.Now()
	due := c.batcher.Due(camp.ID, now, c.cfg.BatchWait)
	if len(due) == 0 {
		return nil
	}
	priced, err := c.ledger.Priced(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}

	active, err := c.urls.ListActive(ctx, camp.ID)
	if err != nil {
		return fmt.Errorf("list urls: %w", err)
	}
	live := make(map[int64]struct{}, len(active))
	for i := range active {
		live[active[i].ID] = struct{}{}
	}

	ids := make([]int64, 0, len(due))
	entries := make([]domain.BudgetLedgerEntry, 0, len(due))
	total := decimal.Zero
	var dropped []int64
	for _, u := range due {
		if _, ok := live[u.URLID]; !ok {
			dropped = append(dropped, u.URLID)
			continue
		}
		ids = append(ids, u.URLID)
		if _, ok := priced[u.URLID]; ok {
			continue
		}
		entries = append(entries, u.Entry(now))
		total = total.Add(u.ContributedBudget)
	}
	if len(dropped) > 0 {
		c.batcher.Remove(camp.ID, dropped...)
		c.logger.Info("inactive urls dropped from batch",
			slog.Int64("campaign_id", camp.ID),
			slog.Any("url_ids", dropped))
	}

	if err = c.bill(ctx, camp, entries, metrics.SourceBatch, camp.State); err != nil {
		return err
	}
	c.batcher.Remove(camp.ID, ids...)
	if len(ids) > 0 {
		c.logger.Info("url batch flushed",
			slog.Int64("campaign_id", camp.ID),
			slog.Int("urls", len(entries)),
			slog.String("added", total.StringFixed(2)),
			slog.Int("still_pending", c.batcher.Pending(camp.ID)))
	}
	return nil
}

// bill claims ledger entries first and then adds their sum to the remote
// budget. A failed budget update releases exactly the claimed entries. A URL
// is billed at most once per cycle.
func (c *Controller) bill(ctx context.Context, camp *domain.Campaign, entries []domain.BudgetLedgerEntry, source string, to domain.State) error {
	claimed, err := c.ledger.Claim(ctx, entries)
	if err != nil {
		return fmt.Errorf("record ledger: %w", err)
	}
	total := decimal.Zero
	for _, e := range claimed {
		total = total.Add(e.ContributedBudget)
	}
	if !total.IsPositive() {
		return nil
	}
	if err = c.addBudget(ctx, camp, total, source, to); err != nil {
		if releaseErr := c.ledger.Release(ctx, camp.ID, claimed); releaseErr != nil {
			c.logger.Error("ledger release failed, urls stay unbilled this cycle",
				slog.Int64("campaign_id", camp.ID),
				slog.Int("entries", len(claimed)),
				slog.Any("error", releaseErr))
		}
		return err
	}
	return nil
}

// addBudget reads the remote budget and raises it by amount. The remote
// budget is never overwritten with a computed total.
func (c *Controller) addBudget(ctx context.Context, camp *domain.Campaign, amount decimal.Decimal, source string, to domain.State) error {
	remote, err := c.network.Campaign(ctx, camp.RemoteID)
	if err != nil {
		return c.adapterFailed(camp, "get_campaign", to, err)
	}
	budget := remote.Budget.Add(amount)
	if err = c.network.UpdateBudget(ctx, camp.RemoteID, budget); err != nil {
		return c.adapterFailed(camp, "update_budget", to, err)
	}
	c.metrics.AddBudget(source, amount)
	c.logger.Info("remote budget increased",
		slog.Int64("campaign_id", camp.ID),
		slog.String("source", source),
		slog.String("added", amount.StringFixed(2)),
		slog.String("budget", budget.StringFixed(2)))
	return nil
}

func (c *Controller) transition(camp *domain.Campaign, to domain.State, now time.Time) {
	from := camp.State
	if from == to {
		return
	}
	camp.State = to
	at := now
	camp.LastTransitionAt = &at
	c.metrics.IncTransition(string(from), string(to))
	c.logger.Info("campaign state changed",
		slog.Int64("campaign_id", camp.ID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("spend", camp.DailySpent.StringFixed(2)))
}

func (c *Controller) adapterFailed(camp *domain.Campaign, op string, to domain.State, err error) error {
	c.metrics.IncAdapterError(op)
	c.logger.Warn("ad network call failed, state unchanged",
		slog.Int64("campaign_id", camp.ID),
		slog.String("op", op),
		slog.String("transition", string(camp.State)+"->"+string(to)),
		slog.Any("error", err))
	return fmt.Errorf("%s %s: %w", op, camp.RemoteID, err)
}

func (c *Controller) load(ctx context.Context, id int64) (*domain.Campaign, error) {
	camp, err := c.campaigns.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign: %w", err)
	}
	if camp == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return camp, nil
}

func (c *Controller) save(ctx context.Context, camp *domain.Campaign) error {
	if err := c.campaigns.Save(ctx, camp); err != nil {
		return fmt.Errorf("save campaign: %w", err)
	}
	return nil
}

// acquire takes the cross-replica lock for a tick. Without a Locker the
// in-process campaign lock is the only guard. A replica that cannot reach
// the lock skips the tick.
func (c *Controller) acquire(ctx context.Context, id int64) (func(), bool) {
	if c.locker == nil {
		return func() {}, true
	}
	key := lock.CampaignKey(id)
	token, ok, err := c.locker.TryLock(ctx, key, c.cfg.LockTTL)
	if err != nil {
		c.logger.Warn("campaign lock unavailable, skipping tick", slog.Int64("campaign_id", id), slog.Any("error", err))
		return nil, false
	}
	if !ok {
		c.logger.Debug("campaign tick held by another replica", slog.Int64("campaign_id", id))
		return nil, false
	}
	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := c.locker.Release(releaseCtx, key, token); err != nil {
			c.logger.Warn("campaign lock release failed", slog.Int64("campaign_id", id), slog.Any("error", err))
		}
	}, true
}

// rearm replaces the campaign's monitor with the one its state calls for.
func (c *Controller) rearm(camp *domain.Campaign, remoteActive bool) {
	if !camp.Monitored() {
		c.teardownLocked(camp.ID)
		return
	}
	role, delay := c.nextMonitor(camp, remoteActive)
	c.arm(camp.ID, role, delay)
}

func (c *Controller) nextMonitor(camp *domain.Campaign, remoteActive bool) (monitor.Role, time.Duration) {
	switch {
	case camp.State == domain.StateHighSpendWaiting && camp.HighSpendCalcAt == nil && camp.WaitingSince != nil:
		wait := camp.WaitingSince.Add(c.cfg.InitialPricingWait).Sub(c.clock.Now())
		if wait <= 0 {
			return monitor.RolePausedChecker, c.cfg.PausedCheckInterval
		}
		return monitor.RolePricingWait, wait
	case c.batcher.Pending(camp.ID) > 0:
		return monitor.RoleBatchSweep, c.cfg.BatchSweepInterval
	case camp.State.Running(), !camp.State.HighRegime() && remoteActive:
		return monitor.RoleActiveChecker, c.cfg.ActiveCheckInterval
	default:
		return monitor.RolePausedChecker, c.cfg.PausedCheckInterval
	}
}

// arm cancels whatever timer the campaign had and starts a new one. It
// reports false once the controller is shut down.
func (c *Controller) arm(campaignID int64, role monitor.Role, delay time.Duration) bool {
	if c.isClosed() {
		return false
	}
	c.monitors.Arm(campaignID, role, delay, c.fire)
	if c.isClosed() {
		c.monitors.Cancel(campaignID)
		return false
	}
	c.metrics.SetArmedMonitors(c.monitors.Len())
	return true
}

func (c *Controller) teardownLocked(campaignID int64) {
	cancelled := c.monitors.Cancel(campaignID)
	discarded := c.batcher.Discard(campaignID)
	c.metrics.SetArmedMonitors(c.monitors.Len())
	if cancelled || discarded > 0 {
		c.logger.Info("campaign monitoring torn down",
			slog.Int64("campaign_id", campaignID),
			slog.Int("pending_discarded", discarded))
	}
}
