package handlers

import (
	"context"
	"net/http"

	"shareit/internal/models"
)

// RequestGetter defines the interface that the service must implement.
type RequestGetter interface {
	GetOne(ctx context.Context, requestID int64) (*models.RequestView, error)
}

// NewGetRequestHandler returns an HTTP handler for fetching one request
// with the items answering it.
// @Summary Get an item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param requestId path int true "Request id"
// @Success 200 {object} handlers.RequestResponse "Request"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{requestId} [get]
func NewGetRequestHandler(svc RequestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, err := pathID(r, "requestId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
			return
		}

		view, err := svc.GetOne(r.Context(), requestID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRequestViewResponse(view))
	}
}
