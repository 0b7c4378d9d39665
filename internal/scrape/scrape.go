// Package scrape fetches and parses store wishlist and product pages.
// Each supported store has its own scraper; all of them share a
// rate-limited retrying HTTP fetcher.
package scrape

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// ErrUnsupportedStore is returned for store names outside the supported
// set. A misconfigured store is a setup error, never silently skipped.
var ErrUnsupportedStore = errors.New("unsupported store")

// StoreID identifies a supported store.
type StoreID string

// Supported stores.
const (
	StoreZara        StoreID = "zara"
	StoreBershka     StoreID = "bershka"
	StorePullAndBear StoreID = "pullandbear"
)

// ParseStore validates a store name from config or the database.
func ParseStore(name string) (StoreID, error) {
	switch StoreID(name) {
	case StoreZara, StoreBershka, StorePullAndBear:
		return StoreID(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStore, name)
	}
}

// Scraper extracts stock snapshots from one store's pages.
type Scraper interface {
	// ScrapeWishlist parses a shared wishlist page into one snapshot per
	// product card.
	ScrapeWishlist(ctx context.Context, pageURL string) ([]domain.StockSnapshot, error)

	// ScrapeItem parses a single product page. The returned snapshot has
	// no ProductID; the caller already knows which item it asked about.
	ScrapeItem(ctx context.Context, productURL string) (*domain.StockSnapshot, error)
}

// Registry maps store IDs to their scraper implementations.
type Registry struct {
	scrapers map[StoreID]Scraper
}

// NewRegistry builds a registry with all supported stores wired to the
// given fetcher.
func NewRegistry(fetcher *Fetcher) *Registry {
	return &Registry{
		scrapers: map[StoreID]Scraper{
			StoreZara:        NewZara(fetcher),
			StoreBershka:     NewBershka(fetcher),
			StorePullAndBear: NewPullAndBear(fetcher),
		},
	}
}

// For returns the scraper for a store name, or ErrUnsupportedStore.
func (r *Registry) For(storeName string) (Scraper, error) {
	id, err := ParseStore(storeName)
	if err != nil {
		return nil, err
	}
	s, ok := r.scrapers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStore, storeName)
	}
	return s, nil
}
