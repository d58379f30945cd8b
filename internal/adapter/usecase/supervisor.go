package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spendguard/internal/core/port"
)

// Supervisor keeps the set of armed monitors in line with the campaigns that
// have monitoring enabled. It arms campaigns that have none and tears down
// campaigns that were deleted or switched off.
type Supervisor struct {
	campaigns port.CampaignRepository
	ctrl      *Controller
	interval  time.Duration
	logger    *slog.Logger

	stop chan struct{}
	wg   sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewSupervisor(campaigns port.CampaignRepository, ctrl *Controller, interval time.Duration, logger *slog.Logger) *Supervisor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Supervisor{
		campaigns: campaigns,
		ctrl:      ctrl,
		interval:  interval,
		logger:    logger.With(slog.String("component", "supervisor")),
		stop:      make(chan struct{}),
	}
}

// Start reconciles once and then on every interval until ctx is done or Stop
// is called.
func (s *Supervisor) Start(ctx context.Context) {
	if s == nil {
		return
	}
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.run(ctx)
	})
}

// Stop ends the loop and cancels every campaign monitor.
func (s *Supervisor) Stop() {
	if s == nil {
		return
	}
	s.stopOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
		s.ctrl.Shutdown()
	})
}

func (s *Supervisor) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.reconcile(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.reconcile(ctx)
		}
	}
}

func (s *Supervisor) reconcile(ctx context.Context) {
	armed, torn, err := s.Reconcile(ctx)
	if err != nil {
		s.logger.Warn("reconcile failed", slog.Any("error", err))
		return
	}
	if armed > 0 || torn > 0 {
		s.logger.Info("monitors reconciled", slog.Int("armed", armed), slog.Int("torn_down", torn))
	}
}

// Reconcile arms every monitored campaign without a monitor and tears down
// monitors whose campaign is no longer monitored. When the campaign list
// cannot be read nothing is torn down.
func (s *Supervisor) Reconcile(ctx context.Context) (armed, torn int, err error) {
	list, err := s.campaigns.ListMonitored(ctx)
	if err != nil {
		return 0, 0, err
	}

	keep := make(map[int64]struct{}, len(list))
	for i := range list {
		keep[list[i].ID] = struct{}{}
		if s.ctrl.Watch(list[i].ID) {
			armed++
		}
	}
	for _, id := range s.ctrl.Monitored() {
		if _, ok := keep[id]; ok {
			continue
		}
		s.ctrl.Teardown(id)
		torn++
	}
	return armed, torn, nil
}
