package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// ItemUpdater defines the interface that the service must implement.
type ItemUpdater interface {
	Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.ItemDB, error)
}

// UpdateItemRequest represents the JSON body for a partial item update.
// Absent fields are left untouched.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	// New name
	Name *string `json:"name"`

	// New description
	Description *string `json:"description"`

	// New availability flag
	Available *bool `json:"available"`
}

// NewUpdateItemHandler returns an HTTP handler for patching an item.
// @Summary Update an item
// @Description Applies only the fields present in the body. Only the owner may update.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param itemId path int true "Item id"
// @Param updateItemRequest body handlers.UpdateItemRequest true "Fields to update"
// @Success 200 {object} handlers.ItemResponse "Updated item"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Router /items/{itemId} [patch]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middlewares.GetUserIDFromContext(r.Context())

		itemID, err := pathID(r, "itemId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
			return
		}

		var req UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Update(r.Context(), ownerID, itemID, models.ItemPatch{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toItemResponse(item))
	}
}
