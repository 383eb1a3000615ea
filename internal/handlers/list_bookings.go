package handlers

import (
	"context"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// BookingLister defines the interface that the service must implement.
type BookingLister interface {
	ListForBooker(ctx context.Context, userID int64, state string) ([]models.BookingDB, error)
	ListForOwner(ctx context.Context, userID int64, state string) ([]models.BookingDB, error)
}

func stateParam(r *http.Request) string {
	state := r.URL.Query().Get("state")
	if state == "" {
		state = models.StateAll
	}
	return state
}

// NewListBookingsHandler returns an HTTP handler for listing the acting
// user's own bookings, filtered by state.
// @Summary List own bookings
// @Description state is one of ALL, WAITING, REJECTED, PAST, CURRENT, FUTURE; defaults to ALL.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "List filter"
// @Success 200 {array} handlers.BookingResponse "Bookings, start time descending"
// @Failure 400 {object} handlers.ErrorResponse "Unknown state"
// @Router /bookings [get]
func NewListBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		bookings, err := svc.ListForBooker(r.Context(), userID, stateParam(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponses(bookings))
	}
}

// NewListOwnerBookingsHandler returns an HTTP handler for listing the
// bookings on the acting user's items, filtered by state.
// @Summary List bookings on own items
// @Description state is one of ALL, WAITING, REJECTED, PAST, CURRENT, FUTURE; defaults to ALL.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param state query string false "List filter"
// @Success 200 {array} handlers.BookingResponse "Bookings, start time descending"
// @Failure 400 {object} handlers.ErrorResponse "Unknown state"
// @Router /bookings/owner [get]
func NewListOwnerBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		bookings, err := svc.ListForOwner(r.Context(), userID, stateParam(r))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponses(bookings))
	}
}
