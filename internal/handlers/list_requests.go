package handlers

import (
	"context"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// RequestLister defines the interface that the service must implement.
type RequestLister interface {
	GetMine(ctx context.Context, requestorID int64) ([]models.RequestView, error)
	GetOthers(ctx context.Context, requestorID int64) ([]models.RequestDB, error)
}

// NewListMyRequestsHandler returns an HTTP handler for listing the
// acting user's requests with the items answering them.
// @Summary List own item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Success 200 {array} handlers.RequestResponse "Requests, newest first"
// @Failure 404 {object} handlers.ErrorResponse "Requestor not found"
// @Router /requests [get]
func NewListMyRequestsHandler(svc RequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestorID := middlewares.GetUserIDFromContext(r.Context())

		views, err := svc.GetMine(r.Context(), requestorID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]RequestResponse, 0, len(views))
		for i := range views {
			out = append(out, toRequestViewResponse(&views[i]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// NewListOtherRequestsHandler returns an HTTP handler for listing
// everyone else's requests, without item enrichment.
// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Success 200 {array} handlers.RequestResponse "Requests, newest first"
// @Router /requests/all [get]
func NewListOtherRequestsHandler(svc RequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestorID := middlewares.GetUserIDFromContext(r.Context())

		requests, err := svc.GetOthers(r.Context(), requestorID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]RequestResponse, 0, len(requests))
		for i := range requests {
			out = append(out, toRequestResponse(&requests[i]))
		}
		writeJSON(w, http.StatusOK, out)
	}
}
