package handlers

import (
	"context"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// ItemViewGetter defines the interface that the service must implement.
type ItemViewGetter interface {
	Get(ctx context.Context, requesterID, itemID int64) (*models.ItemView, error)
}

// NewGetItemHandler returns an HTTP handler for fetching one item with
// its comments and adjacent booking windows.
// @Summary Get an item
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item id"
// @Success 200 {object} handlers.ItemViewResponse "Item"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Router /items/{itemId} [get]
func NewGetItemHandler(svc ItemViewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requesterID := middlewares.GetUserIDFromContext(r.Context())

		itemID, err := pathID(r, "itemId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
			return
		}

		view, err := svc.Get(r.Context(), requesterID, itemID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toItemViewResponse(view))
	}
}
