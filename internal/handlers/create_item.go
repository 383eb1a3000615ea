package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// ItemCreator defines the interface that the service must implement.
type ItemCreator interface {
	Create(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*models.ItemDB, error)
}

// CreateItemRequest represents the JSON body for listing an item
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// Item name
	// required: true
	// default: cordless drill
	Name string `json:"name"`

	// Free-text description
	// required: true
	// default: 18V, two batteries included
	Description string `json:"description"`

	// Whether the item can be booked right away
	// required: true
	Available bool `json:"available"`

	// Item request this listing answers, if any
	RequestID *int64 `json:"requestId"`
}

// NewCreateItemHandler returns an HTTP handler for listing an item.
// @Summary List an item
// @Description Creates an item owned by the user in the X-Sharer-User-Id header.
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param createItemRequest body handlers.CreateItemRequest true "Item to list"
// @Success 201 {object} handlers.ItemResponse "Item created"
// @Failure 404 {object} handlers.ErrorResponse "Owner not found"
// @Router /items [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middlewares.GetUserIDFromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		item, err := svc.Create(r.Context(), ownerID, req.Name, req.Description, req.Available, req.RequestID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toItemResponse(item))
	}
}
