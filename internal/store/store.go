// Package store defines the datastore abstraction for stokwatch.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Store defines all data access operations for stokwatch.
type Store interface {
	// Wishlists
	CreateWishlist(ctx context.Context, w *domain.Wishlist) error
	GetWishlist(ctx context.Context, id string) (*domain.Wishlist, error)
	ListWishlists(ctx context.Context, activeOnly bool) ([]domain.Wishlist, error)
	DeleteWishlist(ctx context.Context, id string) error
	SetWishlistActive(ctx context.Context, id string, active bool) error
	UpdateWishlistLastSwept(ctx context.Context, id string, t time.Time) error

	// Items
	GetItem(ctx context.Context, wishlistID, productID string) (*domain.WishlistItem, error)
	GetItemByID(ctx context.Context, id string) (*domain.WishlistItem, error)
	ListItems(ctx context.Context, wishlistID string) ([]domain.WishlistItem, error)
	UpsertItem(ctx context.Context, item *domain.WishlistItem) error

	// Notifications
	//
	// CreateNotificationIfAbsent inserts a new unsent notification unless
	// one already exists for the same (wishlist_id, product_id) pair.
	// It returns false without error when the insert was suppressed.
	CreateNotificationIfAbsent(ctx context.Context, n *domain.Notification) (bool, error)
	MarkNotificationSent(ctx context.Context, id string, sentAt time.Time) error
	ListNotifications(ctx context.Context, wishlistID string, limit int) ([]domain.Notification, error)
	ListUnsentNotifications(ctx context.Context) ([]domain.Notification, error)
	DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
