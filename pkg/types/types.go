// Package domain defines the core business types for stokwatch.
package domain

import (
	"time"
)

// NotificationKind categorizes a notification record.
type NotificationKind string

// Notification kind constants.
const (
	KindStockAlert NotificationKind = "stock_alert"
	KindPriceDrop  NotificationKind = "price_drop"
	KindTest       NotificationKind = "test"
)

// Wishlist represents a tracked store wishlist page.
type Wishlist struct {
	ID           string     `json:"id"                      db:"id"`
	Name         string     `json:"name"                    db:"name"`
	StoreName    string     `json:"store_name"              db:"store_name"`
	URL          string     `json:"url"                     db:"url"`
	Active       bool       `json:"is_active"               db:"is_active"`
	AutoPurchase bool       `json:"auto_purchase"           db:"auto_purchase"`
	LastSweptAt  *time.Time `json:"last_swept_at,omitempty" db:"last_swept_at"`
	CreatedAt    time.Time  `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"              db:"updated_at"`
}

// WishlistItem represents one tracked product within a wishlist.
// (wishlist_id, product_id) is unique; product_id is the store-scoped
// identifier that stays stable across checks.
type WishlistItem struct {
	ID           string    `json:"id"                      db:"id"`
	WishlistID   string    `json:"wishlist_id"             db:"wishlist_id"`
	ProductID    string    `json:"product_id"              db:"product_id"`
	ProductName  string    `json:"product_name"            db:"product_name"`
	ProductURL   string    `json:"product_url"             db:"product_url"`
	ProductImage string    `json:"product_image,omitempty" db:"product_image"`
	Price        string    `json:"price,omitempty"         db:"price"`
	Size         string    `json:"size,omitempty"          db:"size"`
	Color        string    `json:"color,omitempty"         db:"color"`
	InStock      bool      `json:"in_stock"                db:"in_stock"`
	LastChecked  time.Time `json:"last_checked"            db:"last_checked"`
	CreatedAt    time.Time `json:"created_at"              db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"              db:"updated_at"`
}

// StockSnapshot is the ephemeral result of scraping one product at one
// point in time. It has no identity and is never persisted; the diff
// engine consumes it once and the fields are folded into WishlistItem.
type StockSnapshot struct {
	ProductID    string   `json:"product_id"`
	ProductName  string   `json:"product_name"`
	ProductURL   string   `json:"product_url"`
	ProductImage string   `json:"product_image,omitempty"`
	Price        string   `json:"price,omitempty"`
	Sizes        []string `json:"sizes,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	InStock      bool     `json:"in_stock"`
}

// Notification represents a stock-alert record. At most one unsent
// notification may exist per (wishlist_id, product_id) pair; the store
// enforces this with a partial unique index.
type Notification struct {
	ID         string           `json:"id"                db:"id"`
	WishlistID string           `json:"wishlist_id"       db:"wishlist_id"`
	ProductID  string           `json:"product_id"        db:"product_id"`
	Title      string           `json:"title"             db:"title"`
	Body       string           `json:"body"              db:"body"`
	Kind       NotificationKind `json:"kind"              db:"kind"`
	Sent       bool             `json:"is_sent"           db:"is_sent"`
	SentAt     *time.Time       `json:"sent_at,omitempty" db:"sent_at"`
	CreatedAt  time.Time        `json:"created_at"        db:"created_at"`
}
