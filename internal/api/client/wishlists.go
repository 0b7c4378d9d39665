package client

import (
	"context"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

type wishlistsEnvelope struct {
	Wishlists []domain.Wishlist `json:"wishlists"`
	Total     int               `json:"total"`
}

type itemsEnvelope struct {
	Items []domain.WishlistItem `json:"items"`
	Total int                   `json:"total"`
}

// ListWishlists returns wishlists, optionally only active ones.
func (c *Client) ListWishlists(ctx context.Context, activeOnly bool) ([]domain.Wishlist, error) {
	path := "/api/v1/wishlists"
	if activeOnly {
		path += "?active=true"
	}

	var env wishlistsEnvelope
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	return env.Wishlists, nil
}

// GetWishlist returns a single wishlist by ID.
func (c *Client) GetWishlist(ctx context.Context, id string) (*domain.Wishlist, error) {
	var w domain.Wishlist
	if err := c.get(ctx, "/api/v1/wishlists/"+id, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// ListItems returns the tracked items of a wishlist.
func (c *Client) ListItems(ctx context.Context, wishlistID string) ([]domain.WishlistItem, error) {
	var env itemsEnvelope
	if err := c.get(ctx, "/api/v1/wishlists/"+wishlistID+"/items", &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// TriggerCheck queues an immediate stock check for one wishlist.
func (c *Client) TriggerCheck(ctx context.Context, wishlistID string) error {
	return c.post(ctx, "/api/v1/checks/"+wishlistID, nil, nil)
}

// TriggerItemCheck runs a synchronous stock check for one tracked item.
func (c *Client) TriggerItemCheck(ctx context.Context, wishlistID, itemID string) error {
	return c.post(ctx, "/api/v1/checks/"+wishlistID+"/items/"+itemID, nil, nil)
}
