// Package engine orchestrates wishlist checks: scraping, stock diffing,
// persistence, and notification dispatch.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stokwatch/stokwatch/internal/diff"
	"github.com/stokwatch/stokwatch/internal/metrics"
	"github.com/stokwatch/stokwatch/internal/scrape"
	"github.com/stokwatch/stokwatch/internal/store"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

const defaultSoftTimeout = 25 * time.Minute

// ScraperSource resolves a store name to its scraper.
type ScraperSource interface {
	For(storeName string) (scrape.Scraper, error)
}

// Engine runs individual wishlist checks end to end.
type Engine struct {
	store       store.Store
	scrapers    ScraperSource
	dispatcher  *Dispatcher
	log         *slog.Logger
	softTimeout time.Duration
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	scrapers ScraperSource,
	d *Dispatcher,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:       s,
		scrapers:    scrapers,
		dispatcher:  d,
		log:         slog.Default(),
		softTimeout: defaultSoftTimeout,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSoftTimeout sets the cooperative per-check deadline. The check
// stops picking up new items once the deadline passes; items already
// updated stay committed.
func WithSoftTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.softTimeout = d
	}
}

// CheckList runs one wishlist's check: scrape the page, diff every item
// against its last known state, persist updates, and dispatch stock
// alerts. It returns the number of items processed. Per-item failures
// are logged and skipped; a list-level failure aborts only this check.
func (eng *Engine) CheckList(ctx context.Context, wishlistID string) (int, error) {
	start := time.Now()
	defer func() {
		metrics.CheckDuration.Observe(time.Since(start).Seconds())
	}()

	wl, err := eng.store.GetWishlist(ctx, wishlistID)
	if err != nil {
		return 0, fmt.Errorf("getting wishlist %s: %w", wishlistID, err)
	}

	scraper, err := eng.scrapers.For(wl.StoreName)
	if err != nil {
		return 0, fmt.Errorf("resolving scraper for %s: %w", wl.StoreName, err)
	}

	snaps, err := scraper.ScrapeWishlist(ctx, wl.URL)
	if err != nil {
		metrics.ScrapeFailuresTotal.WithLabelValues(wl.StoreName).Inc()
		return 0, fmt.Errorf("scraping wishlist %s: %w", wl.ID, err)
	}
	metrics.ScrapesTotal.WithLabelValues(wl.StoreName).Inc()

	softDeadline := start.Add(eng.softTimeout)
	processed := 0

	for i := range snaps {
		if ctx.Err() != nil {
			eng.log.Warn("check canceled, committing partial progress",
				"wishlist", wl.ID, "processed", processed, "total", len(snaps))
			break
		}
		if time.Now().After(softDeadline) {
			eng.log.Warn("soft deadline exceeded, abandoning remaining items",
				"wishlist", wl.ID, "processed", processed, "total", len(snaps))
			break
		}

		if eng.processItem(ctx, wl, &snaps[i]) {
			processed++
		}
	}

	if err := eng.store.UpdateWishlistLastSwept(ctx, wl.ID, time.Now()); err != nil {
		eng.log.Error("updating last swept failed", "wishlist", wl.ID, "error", err)
	}

	return processed, nil
}

// processItem diffs and persists one snapshot. Returns false when the
// item was skipped due to a persistence failure.
func (eng *Engine) processItem(
	ctx context.Context,
	wl *domain.Wishlist,
	snap *domain.StockSnapshot,
) bool {
	prev, err := eng.store.GetItem(ctx, wl.ID, snap.ProductID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		eng.log.Error("loading item failed",
			"wishlist", wl.ID, "product", snap.ProductID, "error", err)
		metrics.ItemErrorsTotal.Inc()
		return false
	}

	transition := diff.Classify(prev, snap)
	metrics.TransitionsTotal.WithLabelValues(string(transition)).Inc()

	item := diff.Merge(prev, snap, wl.ID, time.Now())
	if err := eng.store.UpsertItem(ctx, item); err != nil {
		eng.log.Error("upserting item failed",
			"wishlist", wl.ID, "product", snap.ProductID, "error", err)
		metrics.ItemErrorsTotal.Inc()
		return false
	}

	metrics.ItemsProcessedTotal.Inc()

	if transition == diff.BecameInStock {
		eng.log.Info("item back in stock",
			"wishlist", wl.ID, "product", item.ProductID, "name", item.ProductName)
		if err := eng.dispatcher.NotifyStockAlert(ctx, wl, item); err != nil {
			// The unsent record is the durable retry marker; delivery
			// failure never aborts the check.
			eng.log.Error("stock alert dispatch failed",
				"wishlist", wl.ID, "product", item.ProductID, "error", err)
		}
	}

	return true
}

// CheckItem re-checks a single tracked item by scraping its product page
// directly. Used by the manual trigger API and the check CLI command.
func (eng *Engine) CheckItem(ctx context.Context, wishlistID, itemID string) error {
	wl, err := eng.store.GetWishlist(ctx, wishlistID)
	if err != nil {
		return fmt.Errorf("getting wishlist %s: %w", wishlistID, err)
	}

	prev, err := eng.store.GetItemByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("getting item %s: %w", itemID, err)
	}

	scraper, err := eng.scrapers.For(wl.StoreName)
	if err != nil {
		return fmt.Errorf("resolving scraper for %s: %w", wl.StoreName, err)
	}

	snap, err := scraper.ScrapeItem(ctx, prev.ProductURL)
	if err != nil {
		metrics.ScrapeFailuresTotal.WithLabelValues(wl.StoreName).Inc()
		// Extraction failure preserves the last known state.
		metrics.TransitionsTotal.WithLabelValues(string(diff.ExtractionFailed)).Inc()
		return fmt.Errorf("scraping item %s: %w", itemID, err)
	}
	metrics.ScrapesTotal.WithLabelValues(wl.StoreName).Inc()

	// Product pages carry no stable ID; identity comes from the stored item.
	snap.ProductID = prev.ProductID
	if snap.ProductName == "" {
		snap.ProductName = prev.ProductName
	}
	snap.ProductURL = prev.ProductURL
	if snap.ProductImage == "" {
		snap.ProductImage = prev.ProductImage
	}

	transition := diff.Classify(prev, snap)
	metrics.TransitionsTotal.WithLabelValues(string(transition)).Inc()

	item := diff.Merge(prev, snap, wl.ID, time.Now())
	if err := eng.store.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("upserting item %s: %w", itemID, err)
	}

	if transition == diff.BecameInStock {
		if err := eng.dispatcher.NotifyStockAlert(ctx, wl, item); err != nil {
			eng.log.Error("stock alert dispatch failed",
				"wishlist", wl.ID, "product", item.ProductID, "error", err)
		}
	}

	return nil
}
