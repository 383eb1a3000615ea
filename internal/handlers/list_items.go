package handlers

import (
	"context"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// OwnerItemsGetter defines the interface that the service must implement.
type OwnerItemsGetter interface {
	GetByOwner(ctx context.Context, ownerID int64) ([]models.ItemView, error)
}

// NewListItemsHandler returns an HTTP handler for listing the acting
// user's items, each enriched with comments and booking windows.
// @Summary List own items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Success 200 {array} handlers.ItemViewResponse "Items"
// @Failure 404 {object} handlers.ErrorResponse "Owner not found"
// @Router /items [get]
func NewListItemsHandler(svc OwnerItemsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middlewares.GetUserIDFromContext(r.Context())

		views, err := svc.GetByOwner(r.Context(), ownerID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]ItemViewResponse, 0, len(views))
		for i := range views {
			out = append(out, toItemViewResponse(&views[i]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
