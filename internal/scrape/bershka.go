package scrape

import (
	"context"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

var bershkaSelectors = selectorSet{
	card:          ".product-item",
	productIDAttr: "data-product-id",
	name:          ".product-name",
	price:         ".current-price",
	availability:  ".stock-status",
	inStockMarker: "stokta",
	sizeOption:    ".sizes-list .size-option",
	disabledClass: "is-disabled",
}

// Bershka scrapes bershka.com wishlist and product pages.
type Bershka struct {
	fetcher *Fetcher
}

// NewBershka creates a Bershka scraper.
func NewBershka(fetcher *Fetcher) *Bershka {
	return &Bershka{fetcher: fetcher}
}

// ScrapeWishlist implements Scraper.
func (b *Bershka) ScrapeWishlist(ctx context.Context, pageURL string) ([]domain.StockSnapshot, error) {
	doc, err := b.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return parseWishlist(doc, bershkaSelectors)
}

// ScrapeItem implements Scraper.
func (b *Bershka) ScrapeItem(ctx context.Context, productURL string) (*domain.StockSnapshot, error) {
	doc, err := b.fetcher.Fetch(ctx, productURL)
	if err != nil {
		return nil, err
	}
	return parseItem(doc, bershkaSelectors)
}
