package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stokwatch/stokwatch/internal/store"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// WishlistHandler serves read access to wishlists and their tracked items.
type WishlistHandler struct {
	store store.Store
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(s store.Store) *WishlistHandler {
	return &WishlistHandler{store: s}
}

// List returns wishlists, optionally filtered to active ones.
//
// @Summary List wishlists
// @Description Returns all wishlists. Pass active=true to filter to lists the scheduler sweeps.
// @Tags wishlists
// @Produce json
// @Param active query bool false "Only active wishlists"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wishlists [get]
func (h *WishlistHandler) List(c echo.Context) error {
	activeOnly := false
	if raw := c.QueryParam("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid active",
			})
		}
		activeOnly = v
	}

	lists, err := h.store.ListWishlists(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "wishlist query failed",
		})
	}

	if lists == nil {
		lists = []domain.Wishlist{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"wishlists": lists,
		"total":     len(lists),
	})
}

// Get returns a single wishlist by ID.
//
// @Summary Get a wishlist
// @Description Returns a single wishlist by its UUID.
// @Tags wishlists
// @Produce json
// @Param id path string true "Wishlist UUID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wishlists/{id} [get]
func (h *WishlistHandler) Get(c echo.Context) error {
	wl, err := h.store.GetWishlist(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "wishlist not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "wishlist query failed",
		})
	}

	return c.JSON(http.StatusOK, wl)
}

// Items returns the tracked items of a wishlist.
//
// @Summary List wishlist items
// @Description Returns the tracked items and their last observed stock state.
// @Tags wishlists
// @Produce json
// @Param id path string true "Wishlist UUID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wishlists/{id}/items [get]
func (h *WishlistHandler) Items(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.store.GetWishlist(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "wishlist not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "wishlist query failed",
		})
	}

	items, err := h.store.ListItems(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "item query failed",
		})
	}

	if items == nil {
		items = []domain.WishlistItem{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": len(items),
	})
}
