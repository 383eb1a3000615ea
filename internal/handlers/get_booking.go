package handlers

import (
	"context"
	"net/http"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// BookingGetter defines the interface that the service must implement.
type BookingGetter interface {
	Get(ctx context.Context, userID, bookingID int64) (*models.BookingDB, error)
}

// NewGetBookingHandler returns an HTTP handler for fetching one booking.
// @Summary Get a booking
// @Description Readable by the booker and by the owner of the booked item.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param bookingId path int true "Booking id"
// @Success 200 {object} handlers.BookingResponse "Booking"
// @Failure 403 {object} handlers.ErrorResponse "No access to this booking"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /bookings/{bookingId} [get]
func NewGetBookingHandler(svc BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		bookingID, err := pathID(r, "bookingId")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid booking id"})
			return
		}

		booking, err := svc.Get(r.Context(), userID, bookingID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponse(booking))
	}
}
