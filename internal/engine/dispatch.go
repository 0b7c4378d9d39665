package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stokwatch/stokwatch/internal/metrics"
	"github.com/stokwatch/stokwatch/internal/notify"
	"github.com/stokwatch/stokwatch/internal/store"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// Dispatcher turns stock transitions into delivered notifications. The
// store's partial unique index makes record creation idempotent, so
// concurrent duplicate detections collapse into one pending record.
type Dispatcher struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(s store.Store, n notify.Notifier, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:    s,
		notifier: n,
		log:      log,
	}
}

// NotifyStockAlert records and delivers a back-in-stock alert. When an
// unsent record already exists for the (wishlist, product) pair the call
// is a no-op; the pending record already guarantees eventual delivery.
// On delivery failure the record stays unsent as the durable retry marker.
func (d *Dispatcher) NotifyStockAlert(
	ctx context.Context,
	wl *domain.Wishlist,
	item *domain.WishlistItem,
) error {
	msg := notify.StockAlert(wl, item)

	n := &domain.Notification{
		WishlistID: wl.ID,
		ProductID:  item.ProductID,
		Title:      msg.Title,
		Body:       msg.Body,
		Kind:       domain.KindStockAlert,
	}

	created, err := d.store.CreateNotificationIfAbsent(ctx, n)
	if err != nil {
		return fmt.Errorf("creating notification record: %w", err)
	}
	if !created {
		metrics.NotificationsDedupedTotal.Inc()
		d.log.Debug("stock alert already pending",
			"wishlist", wl.ID, "product", item.ProductID)
		return nil
	}

	return d.deliver(ctx, n, msg)
}

// ProcessUnsent retries delivery of every unsent notification record. The
// payload is rebuilt through the same builder as the first attempt, so a
// retried record delivers the same data shape. Records whose wishlist or
// item has been removed since are skipped; the cascade cleans them up.
func (d *Dispatcher) ProcessUnsent(ctx context.Context) error {
	pending, err := d.store.ListUnsentNotifications(ctx)
	if err != nil {
		return fmt.Errorf("listing unsent notifications: %w", err)
	}

	for i := range pending {
		n := &pending[i]

		wl, err := d.store.GetWishlist(ctx, n.WishlistID)
		if err != nil {
			d.log.Warn("skipping unsent notification, wishlist lookup failed",
				"notification", n.ID, "error", err)
			continue
		}
		item, err := d.store.GetItem(ctx, n.WishlistID, n.ProductID)
		if err != nil {
			d.log.Warn("skipping unsent notification, item lookup failed",
				"notification", n.ID, "error", err)
			continue
		}

		if err := d.deliver(ctx, n, notify.StockAlert(wl, item)); err != nil {
			d.log.Error("redelivery failed, record stays unsent",
				"notification", n.ID, "error", err)
		}
	}

	return nil
}

func (d *Dispatcher) deliver(ctx context.Context, n *domain.Notification, msg notify.Message) error {
	if err := d.notifier.Send(ctx, msg); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending notification: %w", err)
	}

	if err := d.store.MarkNotificationSent(ctx, n.ID, time.Now()); err != nil {
		// Delivered but not recorded; the next ProcessUnsent pass will
		// send again. Duplicate suppression only holds while the mark
		// write succeeds.
		return fmt.Errorf("marking notification sent: %w", err)
	}

	metrics.NotificationsSentTotal.Inc()
	return nil
}

// PurgeOldNotifications deletes records older than maxAge regardless of
// send status and returns the number removed.
func (d *Dispatcher) PurgeOldNotifications(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)

	count, err := d.store.DeleteNotificationsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging notifications: %w", err)
	}

	if count > 0 {
		metrics.NotificationsPurgedTotal.Add(float64(count))
		d.log.Info("purged old notifications", "count", count, "cutoff", cutoff)
	}

	return count, nil
}
