package scrape

import (
	"context"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

var zaraSelectors = selectorSet{
	card:          ".product-item",
	productIDAttr: "data-product-id",
	name:          ".product-name",
	price:         ".price",
	availability:  ".product-availability",
	inStockMarker: "stokta",
	sizeOption:    ".size-selector .size",
	colorOption:   ".color-selector .color",
	disabledClass: "disabled",
}

// Zara scrapes zara.com wishlist and product pages.
type Zara struct {
	fetcher *Fetcher
}

// NewZara creates a Zara scraper.
func NewZara(fetcher *Fetcher) *Zara {
	return &Zara{fetcher: fetcher}
}

// ScrapeWishlist implements Scraper.
func (z *Zara) ScrapeWishlist(ctx context.Context, pageURL string) ([]domain.StockSnapshot, error) {
	doc, err := z.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return parseWishlist(doc, zaraSelectors)
}

// ScrapeItem implements Scraper.
func (z *Zara) ScrapeItem(ctx context.Context, productURL string) (*domain.StockSnapshot, error) {
	doc, err := z.fetcher.Fetch(ctx, productURL)
	if err != nil {
		return nil, err
	}
	return parseItem(doc, zaraSelectors)
}
