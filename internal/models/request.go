package models

import "time"

// RequestDB represents an item request row in the database: a broadcast
// for an item nobody has listed yet.
type RequestDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Description string    `json:"description" db:"description"` // What the requestor is looking for
	RequestorID int64     `json:"requestor_id" db:"requestor_id"` // User who broadcast the request
	CreatedAt   time.Time `json:"created" db:"created_at"`      // Timestamp when the request was placed
}

// RequestView is a request enriched with the items listed in answer to it.
type RequestView struct {
	Request RequestDB
	Items   []ItemDB
}
