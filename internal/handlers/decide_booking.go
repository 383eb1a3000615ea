package handlers

import (
	"context"
	"net/http"
	"strconv"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// BookingDecider defines the interface that the service must implement.
type BookingDecider interface {
	Decide(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.BookingDB, error)
}

// NewDecideBookingHandler returns an HTTP handler for approving or
// rejecting a booking.
// @Summary Approve or reject a booking
// @Description Only the owner of the booked item may decide; a decision is terminal.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking id"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} handlers.BookingResponse "Decided booking"
// @Failure 400 {object} handlers.ErrorResponse "Already decided or unknown owner"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /bookings/{bookingId} [patch]
func NewDecideBookingHandler(svc BookingDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID := middlewares.GetUserIDFromContext(r.Context())

		bookingID, err := pathID(r, "bookingId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid booking id"})
			return
		}

		approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid approved parameter"})
			return
		}

		booking, err := svc.Decide(r.Context(), ownerID, bookingID, approved)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponse(booking))
	}
}
