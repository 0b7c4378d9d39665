package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

type notificationsEnvelope struct {
	Notifications []domain.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

type purgeResponse struct {
	Status string `json:"status"`
	Purged int64  `json:"purged"`
}

// ListNotifications returns notification records, newest first. An empty
// wishlistID returns records across all lists; limit <= 0 uses the server
// default.
func (c *Client) ListNotifications(
	ctx context.Context,
	wishlistID string,
	limit int,
) ([]domain.Notification, error) {
	q := url.Values{}
	if wishlistID != "" {
		q.Set("wishlist_id", wishlistID)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}

	path := "/api/v1/notifications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var env notificationsEnvelope
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}
	return env.Notifications, nil
}

// PurgeNotifications deletes notification records older than the server's
// retention window and returns the number deleted.
func (c *Client) PurgeNotifications(ctx context.Context) (int64, error) {
	var resp purgeResponse
	if err := c.post(ctx, "/api/v1/notifications/purge", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Purged, nil
}
