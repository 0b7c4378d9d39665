package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/stokwatch/stokwatch/internal/store"
)

// CheckSubmitter defines the interface for queueing a wishlist check.
type CheckSubmitter interface {
	Submit(wishlistID string) bool
}

// ItemChecker defines the interface for checking one tracked item.
type ItemChecker interface {
	CheckItem(ctx context.Context, wishlistID, itemID string) error
}

// NotificationPurger defines the interface for retention cleanup.
type NotificationPurger interface {
	PurgeOldNotifications(ctx context.Context, maxAge time.Duration) (int64, error)
}

// CheckHandler handles manual check trigger requests.
type CheckHandler struct {
	pool CheckSubmitter
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(pool CheckSubmitter) *CheckHandler {
	return &CheckHandler{pool: pool}
}

// TriggerCheckInput is the input for triggering a wishlist check.
type TriggerCheckInput struct {
	ID string `path:"id" doc:"Wishlist UUID"`
}

// TriggerCheckOutput is the response body for the check trigger endpoint.
type TriggerCheckOutput struct {
	Body struct {
		Status string `json:"status" example:"check queued" doc:"Submission status"`
	}
}

// Trigger queues an out-of-band check for one wishlist. The check runs on
// the same worker pool as scheduled sweeps, so a list already in flight or
// a full queue rejects the request.
func (h *CheckHandler) Trigger(
	_ context.Context,
	input *TriggerCheckInput,
) (*TriggerCheckOutput, error) {
	if !h.pool.Submit(input.ID) {
		return nil, huma.Error409Conflict("check already in flight or queue full")
	}

	resp := &TriggerCheckOutput{}
	resp.Body.Status = "check queued"
	return resp, nil
}

// ItemCheckHandler handles single-item check requests.
type ItemCheckHandler struct {
	engine ItemChecker
}

// NewItemCheckHandler creates a new ItemCheckHandler.
func NewItemCheckHandler(e ItemChecker) *ItemCheckHandler {
	return &ItemCheckHandler{engine: e}
}

// TriggerItemCheckInput is the input for checking one tracked item.
type TriggerItemCheckInput struct {
	ID     string `path:"id"     doc:"Wishlist UUID"`
	ItemID string `path:"itemID" doc:"Item UUID"`
}

// TriggerItemCheckOutput is the response body for the item check endpoint.
type TriggerItemCheckOutput struct {
	Body struct {
		Status string `json:"status" example:"item checked" doc:"Check status"`
	}
}

// CheckItem runs a synchronous stock check for one tracked item. Unlike the
// list-level trigger it bypasses the worker pool, so the response reflects
// the completed check.
func (h *ItemCheckHandler) CheckItem(
	ctx context.Context,
	input *TriggerItemCheckInput,
) (*TriggerItemCheckOutput, error) {
	if err := h.engine.CheckItem(ctx, input.ID, input.ItemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("wishlist or item not found")
		}
		return nil, huma.Error500InternalServerError("item check failed: " + err.Error())
	}

	resp := &TriggerItemCheckOutput{}
	resp.Body.Status = "item checked"
	return resp, nil
}

// PurgeHandler handles manual retention cleanup requests.
type PurgeHandler struct {
	purger    NotificationPurger
	retention time.Duration
}

// NewPurgeHandler creates a new PurgeHandler.
func NewPurgeHandler(p NotificationPurger, retention time.Duration) *PurgeHandler {
	return &PurgeHandler{purger: p, retention: retention}
}

// PurgeOutput is the response body for the purge endpoint.
type PurgeOutput struct {
	Body struct {
		Status string `json:"status" example:"purge completed" doc:"Purge status"`
		Purged int64  `json:"purged" example:"12"              doc:"Deleted notification records"`
	}
}

// Purge deletes notification records older than the retention window.
func (h *PurgeHandler) Purge(ctx context.Context, _ *struct{}) (*PurgeOutput, error) {
	purged, err := h.purger.PurgeOldNotifications(ctx, h.retention)
	if err != nil {
		return nil, huma.Error500InternalServerError("purge failed: " + err.Error())
	}

	resp := &PurgeOutput{}
	resp.Body.Status = "purge completed"
	resp.Body.Purged = purged
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(
	api huma.API,
	checkH *CheckHandler,
	itemH *ItemCheckHandler,
	purgeH *PurgeHandler,
) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/checks/{id}",
		Summary:     "Trigger a wishlist check",
		Description: "Queues an immediate stock check for one wishlist on the shared worker pool.",
		Tags:        []string{"checks"},
		Errors:      []int{http.StatusConflict},
	}, checkH.Trigger)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-item-check",
		Method:      http.MethodPost,
		Path:        "/api/v1/checks/{id}/items/{itemID}",
		Summary:     "Check a single item",
		Description: "Runs a synchronous stock check for one tracked item.",
		Tags:        []string{"checks"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, itemH.CheckItem)

	huma.Register(api, huma.Operation{
		OperationID: "purge-notifications",
		Method:      http.MethodPost,
		Path:        "/api/v1/notifications/purge",
		Summary:     "Purge old notifications",
		Description: "Deletes notification records older than the configured retention window.",
		Tags:        []string{"notifications"},
		Errors:      []int{http.StatusInternalServerError},
	}, purgeH.Purge)
}
