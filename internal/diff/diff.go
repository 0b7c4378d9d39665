// Package diff classifies stock-state changes between the last persisted
// item state and a freshly scraped snapshot. Classification is pure; it
// never touches the store or the network.
package diff

import (
	"strings"
	"time"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// Transition is the verdict for one item between two checks. Only
// BecameInStock triggers a notification; Created is an initial
// observation, not an alert.
type Transition string

const (
	Unchanged        Transition = "unchanged"
	BecameInStock    Transition = "became_in_stock"
	BecameOutOfStock Transition = "became_out_of_stock"
	Created          Transition = "created"
	ExtractionFailed Transition = "extraction_failed"
)

// Classify compares the previous persisted state of an item against a new
// snapshot. prev is nil when the item has never been seen; snap is nil
// when extraction failed for an item that still exists. On extraction
// failure the previous state is preserved untouched, so a transient
// scrape error cannot re-fire BecameInStock on the next good scrape.
func Classify(prev *domain.WishlistItem, snap *domain.StockSnapshot) Transition {
	if snap == nil {
		return ExtractionFailed
	}
	if prev == nil {
		return Created
	}

	switch {
	case !prev.InStock && snap.InStock:
		return BecameInStock
	case prev.InStock && !snap.InStock:
		return BecameOutOfStock
	default:
		return Unchanged
	}
}

// Merge folds a snapshot into an item for persistence. Price and variant
// fields are always refreshed regardless of the transition; only in_stock
// drives notification decisions. A nil prev yields a fresh item for the
// given wishlist.
func Merge(
	prev *domain.WishlistItem,
	snap *domain.StockSnapshot,
	wishlistID string,
	now time.Time,
) *domain.WishlistItem {
	item := &domain.WishlistItem{WishlistID: wishlistID}
	if prev != nil {
		*item = *prev
	}

	item.ProductID = snap.ProductID
	item.ProductName = snap.ProductName
	item.ProductURL = snap.ProductURL
	item.ProductImage = snap.ProductImage
	item.Price = snap.Price
	item.Size = strings.Join(snap.Sizes, ", ")
	item.Color = strings.Join(snap.Colors, ", ")
	item.InStock = snap.InStock
	item.LastChecked = now

	return item
}
