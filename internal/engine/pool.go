package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/stokwatch/stokwatch/internal/metrics"
)

// CheckRunner executes one wishlist check. Implemented by Engine.
type CheckRunner interface {
	CheckList(ctx context.Context, wishlistID string) (int, error)
}

// Pool is a fixed-size worker pool consuming check jobs from a bounded
// queue. Each list has an in-flight marker so two checks for the same
// list never run concurrently; the marker is cleared on every exit path,
// hard timeout included, so a hung check can never lock a list out of
// monitoring.
type Pool struct {
	runner      CheckRunner
	log         *slog.Logger
	jobs        chan string
	workers     int
	hardTimeout time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
	stopped  bool

	wg sync.WaitGroup
}

// NewPool creates a worker pool.
func NewPool(
	runner CheckRunner,
	workers int,
	queueSize int,
	hardTimeout time.Duration,
	log *slog.Logger,
) *Pool {
	return &Pool{
		runner:      runner,
		log:         log,
		jobs:        make(chan string, queueSize),
		workers:     workers,
		hardTimeout: hardTimeout,
		inFlight:    make(map[string]struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for id := range p.jobs {
				p.runJob(id)
			}
		}()
	}
	p.log.Info("worker pool started", "workers", p.workers, "queue_size", cap(p.jobs))
}

// Stop closes the queue and waits for running jobs to finish. Jobs
// already queued are still executed.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	p.log.Info("worker pool stopped")
}

// Submit enqueues a check for a wishlist without blocking. It returns
// false when the list is already in flight or the queue is full; the
// list is picked up again on the next sweep.
func (p *Pool) Submit(wishlistID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return false
	}
	if _, busy := p.inFlight[wishlistID]; busy {
		p.log.Debug("check already in flight, skipping", "wishlist", wishlistID)
		return false
	}

	select {
	case p.jobs <- wishlistID:
		p.inFlight[wishlistID] = struct{}{}
		metrics.JobsSubmittedTotal.Inc()
		metrics.JobsInFlight.Inc()
		return true
	default:
		metrics.JobsDroppedTotal.Inc()
		p.log.Warn("job queue full, dropping check", "wishlist", wishlistID)
		return false
	}
}

// InFlight reports whether a check for the list is queued or running.
func (p *Pool) InFlight(wishlistID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.inFlight[wishlistID]
	return busy
}

func (p *Pool) runJob(wishlistID string) {
	defer p.clearInFlight(wishlistID)

	ctx, cancel := context.WithTimeout(context.Background(), p.hardTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan struct{})

	var processed int
	var err error
	go func() {
		defer close(done)
		processed, err = p.runner.CheckList(ctx, wishlistID)
	}()

	select {
	case <-done:
		if err != nil {
			metrics.CheckErrorsTotal.Inc()
			p.log.Error("check failed",
				"wishlist", wishlistID,
				"duration", time.Since(start),
				"error", err)
			return
		}
		metrics.ChecksTotal.Inc()
		p.log.Info("check completed",
			"wishlist", wishlistID,
			"items_processed", processed,
			"duration", time.Since(start))

	case <-ctx.Done():
		// The goroutine is abandoned; Go cannot kill it. The in-flight
		// marker is still cleared so the list stays eligible for the
		// next sweep.
		metrics.CheckTimeoutsTotal.Inc()
		metrics.CheckErrorsTotal.Inc()
		p.log.Error("check hit hard timeout, abandoning",
			"wishlist", wishlistID,
			"timeout", p.hardTimeout)
	}
}

func (p *Pool) clearInFlight(wishlistID string) {
	p.mu.Lock()
	delete(p.inFlight, wishlistID)
	p.mu.Unlock()
	metrics.JobsInFlight.Dec()
}
