package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// selectorSet holds the per-store CSS selectors. The stores share a page
// structure but diverge in class names, so parsing is shared and only the
// selectors differ.
type selectorSet struct {
	card          string // one product card on a wishlist page
	productIDAttr string // attribute on the card carrying the stable product ID
	name          string
	price         string
	availability  string // element whose text marks stock state
	inStockMarker string // lowercase substring meaning "in stock"
	sizeOption    string // one size option on a product page
	colorOption   string // one color option on a product page
	disabledClass string // class marking a size/color as unavailable
}

func parseWishlist(doc *goquery.Document, sel selectorSet) ([]domain.StockSnapshot, error) {
	var snapshots []domain.StockSnapshot

	doc.Find(sel.card).Each(func(_ int, card *goquery.Selection) {
		productID, ok := card.Attr(sel.productIDAttr)
		if !ok || productID == "" {
			// Cards without a stable ID cannot be tracked across checks.
			return
		}

		snap := domain.StockSnapshot{
			ProductID:   productID,
			ProductName: strings.TrimSpace(card.Find(sel.name).First().Text()),
			Price:       strings.TrimSpace(card.Find(sel.price).First().Text()),
		}

		if href, ok := card.Find("a").First().Attr("href"); ok {
			snap.ProductURL = href
		}
		if src, ok := card.Find("img").First().Attr("src"); ok {
			snap.ProductImage = src
		}

		availability := strings.ToLower(card.Find(sel.availability).First().Text())
		snap.InStock = strings.Contains(availability, sel.inStockMarker)

		snapshots = append(snapshots, snap)
	})

	if snapshots == nil {
		return nil, fmt.Errorf("no product cards found (selector %q)", sel.card)
	}

	return snapshots, nil
}

func parseItem(doc *goquery.Document, sel selectorSet) (*domain.StockSnapshot, error) {
	snap := &domain.StockSnapshot{
		ProductName: strings.TrimSpace(doc.Find(sel.name).First().Text()),
		Price:       strings.TrimSpace(doc.Find(sel.price).First().Text()),
	}

	availability := doc.Find(sel.availability).First()
	if availability.Length() == 0 {
		return nil, fmt.Errorf("availability element not found (selector %q)", sel.availability)
	}
	snap.InStock = strings.Contains(strings.ToLower(availability.Text()), sel.inStockMarker)

	doc.Find(sel.sizeOption).Each(func(_ int, opt *goquery.Selection) {
		if opt.HasClass(sel.disabledClass) {
			return
		}
		if size := strings.TrimSpace(opt.Text()); size != "" {
			snap.Sizes = append(snap.Sizes, size)
		}
	})

	if sel.colorOption != "" {
		doc.Find(sel.colorOption).Each(func(_ int, opt *goquery.Selection) {
			if opt.HasClass(sel.disabledClass) {
				return
			}
			if color := strings.TrimSpace(opt.Text()); color != "" {
				snap.Colors = append(snap.Colors, color)
			}
		})
	}

	return snap, nil
}
