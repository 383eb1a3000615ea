package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// RequestCreator defines the interface that the service must implement.
type RequestCreator interface {
	Add(ctx context.Context, requestorID int64, description string) (*models.RequestDB, error)
}

// CreateRequestRequest represents the JSON body for broadcasting an
// item request
// swagger:model CreateRequestRequest
type CreateRequestRequest struct {
	// What the requestor is looking for
	// required: true
	// default: looking for a tile cutter for the weekend
	Description string `json:"description"`
}

// NewCreateRequestHandler returns an HTTP handler for broadcasting a
// request for an unlisted item.
// @Summary Create an item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param createRequestRequest body handlers.CreateRequestRequest true "Request to broadcast"
// @Success 201 {object} handlers.RequestResponse "Request created"
// @Failure 404 {object} handlers.ErrorResponse "Requestor not found"
// @Router /requests [post]
func NewCreateRequestHandler(svc RequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestorID := middlewares.GetUserIDFromContext(r.Context())

		var req CreateRequestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		request, err := svc.Add(r.Context(), requestorID, req.Description)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRequestResponse(request))
	}
}
