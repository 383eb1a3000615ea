package models

import "time"

// Booking statuses
const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Booking list filters. A filter selects a temporal or status view of
// bookings and is distinct from the stored status.
const (
	StateAll      = "ALL"
	StateWaiting  = "WAITING"
	StateRejected = "REJECTED"
	StatePast     = "PAST"
	StateCurrent  = "CURRENT"
	StateFuture   = "FUTURE"
)

// ValidState reports whether s is a recognized booking list filter.
func ValidState(s string) bool {
	switch s {
	case StateAll, StateWaiting, StateRejected, StatePast, StateCurrent, StateFuture:
		return true
	}
	return false
}

// BookingDB represents a booking row in the database
type BookingDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	ItemID    int64     `json:"item_id" db:"item_id"`       // Booked item
	BookerID  int64     `json:"booker_id" db:"booker_id"`   // User who reserves the item
	Start     time.Time `json:"start" db:"start_date"`      // Rental period start
	End       time.Time `json:"end" db:"end_date"`          // Rental period end
	Status    string    `json:"status" db:"status"`         // WAITING, APPROVED or REJECTED
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the booking was placed
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last status change
}

// BookingEvent is the message published to the broker on every booking
// lifecycle change.
type BookingEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix timestamp (seconds) of the change
	BookingID int64  `json:"booking_id"` // Affected booking
	ItemID    int64  `json:"item_id"`    // Booked item
	BookerID  int64  `json:"booker_id"`  // Reserving user
	Status    string `json:"status"`     // Status after the change
	Operation string `json:"operation"`  // "created", "approved" or "rejected"
}
