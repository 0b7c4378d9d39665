package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/stokwatch/stokwatch/internal/metrics"
	"github.com/stokwatch/stokwatch/internal/store"
)

// Scheduler triggers periodic sweeps over active wishlists and the daily
// retention maintenance. Sweeps only submit jobs; the pool does the work,
// so a saturated pool never blocks the next tick.
type Scheduler struct {
	cron       *cron.Cron
	store      store.Store
	pool       *Pool
	dispatcher *Dispatcher
	retention  time.Duration
	log        *slog.Logger
}

// NewScheduler creates a Scheduler with sweep and maintenance entries.
func NewScheduler(
	s store.Store,
	pool *Pool,
	d *Dispatcher,
	sweepInterval time.Duration,
	maintenanceInterval time.Duration,
	retention time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:       c,
		store:      s,
		pool:       pool,
		dispatcher: d,
		retention:  retention,
		log:        log,
	}

	if _, err := c.AddFunc("@every "+sweepInterval.String(), sched.runSweep); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc("@every "+maintenanceInterval.String(), sched.runMaintenance); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running triggers to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// Sweep submits a check job for every active wishlist and retries any
// unsent notifications left over from earlier failures. Lists already in
// flight or dropped by a full queue are picked up on the next sweep.
func (s *Scheduler) Sweep(ctx context.Context) {
	start := time.Now()
	metrics.SweepsTotal.Inc()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	if err := s.dispatcher.ProcessUnsent(ctx); err != nil {
		s.log.Error("processing unsent notifications failed", "error", err)
	}

	lists, err := s.store.ListWishlists(ctx, true)
	if err != nil {
		s.log.Error("listing active wishlists failed", "error", err)
		return
	}

	submitted := 0
	for i := range lists {
		if s.pool.Submit(lists[i].ID) {
			submitted++
		}
	}

	s.log.Info("sweep complete",
		"active_lists", len(lists),
		"submitted", submitted,
		"duration", time.Since(start))
}

// Maintenance purges notification records older than the retention window.
func (s *Scheduler) Maintenance(ctx context.Context) {
	if _, err := s.dispatcher.PurgeOldNotifications(ctx, s.retention); err != nil {
		s.log.Error("retention cleanup failed", "error", err)
	}
}

func (s *Scheduler) runSweep() {
	s.log.Info("scheduled sweep starting")
	s.Sweep(context.Background())
}

func (s *Scheduler) runMaintenance() {
	s.log.Info("scheduled maintenance starting")
	s.Maintenance(context.Background())
}
