package models

import "time"

// ItemDB represents an item row in the database
type ItemDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Name        string    `json:"name" db:"name"`               // Item name
	Description string    `json:"description" db:"description"` // Free-text description
	Available   bool      `json:"available" db:"available"`     // Whether the item can currently be booked
	OwnerID     int64     `json:"owner_id" db:"owner_id"`       // Identifier of the listing user, immutable
	RequestID   *int64    `json:"request_id" db:"request_id"`   // Originating item request, if any
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Timestamp when the item was listed
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`   // Timestamp of the last update
}

// ItemPatch carries the optional fields of a partial item update.
// Nil fields are left untouched.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemView is an item enriched for display: comments plus the adjacent
// booking windows around the current moment.
type ItemView struct {
	Item        ItemDB
	Comments    []CommentDB
	LastBooking *BookingDB
	NextBooking *BookingDB
}
