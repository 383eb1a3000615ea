package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"shareit/internal/middlewares"
	"shareit/internal/models"
)

// BookingCreator defines the interface that the service must implement.
type BookingCreator interface {
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.BookingDB, error)
}

// CreateBookingRequest represents the JSON body for placing a booking
// swagger:model CreateBookingRequest
type CreateBookingRequest struct {
	// Item to book
	// required: true
	ItemID int64 `json:"itemId"`

	// Rental period start, ISO-8601 local date-time
	// required: true
	// default: 2026-09-01T10:00:00
	Start models.DateTime `json:"start"`

	// Rental period end, ISO-8601 local date-time
	// required: true
	// default: 2026-09-03T10:00:00
	End models.DateTime `json:"end"`
}

// NewCreateBookingHandler returns an HTTP handler for placing a booking.
// @Summary Book an item
// @Description Places a WAITING booking for the acting user. The item must be available.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user"
// @Param createBookingRequest body handlers.CreateBookingRequest true "Booking to place"
// @Success 201 {object} handlers.BookingResponse "Booking placed"
// @Failure 400 {object} handlers.ErrorResponse "Item is not available"
// @Failure 404 {object} handlers.ErrorResponse "Item or user not found"
// @Router /bookings [post]
func NewCreateBookingHandler(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookerID := middlewares.GetUserIDFromContext(r.Context())

		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}

		booking, err := svc.Create(r.Context(), bookerID, req.ItemID, req.Start.Time, req.End.Time)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBookingResponse(booking))
	}
}
