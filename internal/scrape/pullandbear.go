package scrape

import (
	"context"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

var pullAndBearSelectors = selectorSet{
	card:          ".product-item",
	productIDAttr: "data-product-id",
	name:          ".product-name",
	price:         ".price-amount",
	availability:  ".availability-label",
	inStockMarker: "stokta",
	sizeOption:    ".size-list .size",
	disabledClass: "disabled",
}

// PullAndBear scrapes pullandbear.com wishlist and product pages.
type PullAndBear struct {
	fetcher *Fetcher
}

// NewPullAndBear creates a Pull&Bear scraper.
func NewPullAndBear(fetcher *Fetcher) *PullAndBear {
	return &PullAndBear{fetcher: fetcher}
}

// ScrapeWishlist implements Scraper.
func (p *PullAndBear) ScrapeWishlist(ctx context.Context, pageURL string) ([]domain.StockSnapshot, error) {
	doc, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return parseWishlist(doc, pullAndBearSelectors)
}

// ScrapeItem implements Scraper.
func (p *PullAndBear) ScrapeItem(ctx context.Context, productURL string) (*domain.StockSnapshot, error) {
	doc, err := p.fetcher.Fetch(ctx, productURL)
	if err != nil {
		return nil, err
	}
	return parseItem(doc, pullAndBearSelectors)
}
