package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stokwatch/stokwatch/internal/store"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

const defaultNotificationLimit = 50

// NotificationHandler serves read access to notification history.
type NotificationHandler struct {
	store store.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(s store.Store) *NotificationHandler {
	return &NotificationHandler{store: s}
}

// List returns notification records, newest first.
//
// @Summary List notifications
// @Description Returns notification records, newest first. Filter by wishlist_id and cap with limit.
// @Tags notifications
// @Produce json
// @Param wishlist_id query string false "Filter by wishlist UUID"
// @Param limit query int false "Number of results (default 50)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit := defaultNotificationLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit",
			})
		}
		limit = v
	}

	notifications, err := h.store.ListNotifications(
		c.Request().Context(),
		c.QueryParam("wishlist_id"),
		limit,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "notification query failed",
		})
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"notifications": notifications,
		"total":         len(notifications),
	})
}
