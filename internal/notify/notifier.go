// Package notify defines the notification interface and implementations
// for stock-alert delivery.
package notify

import (
	"context"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// Message contains the data needed to deliver one push notification.
// Empty Tokens means "broadcast to all subscribers of the default topic".
type Message struct {
	Title  string
	Body   string
	Data   map[string]string
	Tokens []string
}

// Notifier defines the interface for push notification delivery.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// StockAlert builds the message for a back-in-stock event. The data
// payload carries the wishlist and product identifiers so a push consumer
// can resolve the tracked item, plus the display fields.
func StockAlert(wl *domain.Wishlist, item *domain.WishlistItem) Message {
	return Message{
		Title: "Stok Geldi! - " + wl.Name,
		Body:  item.ProductName + " ürünü stokta! Hemen satın alabilirsiniz.",
		Data: map[string]string{
			"type":          "stock_alert",
			"wishlist_id":   wl.ID,
			"product_id":    item.ProductID,
			"wishlist_name": wl.Name,
			"product_name":  item.ProductName,
			"product_url":   item.ProductURL,
			"action":        "open_product",
		},
	}
}
