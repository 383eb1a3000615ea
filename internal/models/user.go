package models

import "time"

// UserDB represents a user row in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Unique email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last update
}

// UserPatch carries the optional fields of a partial user update.
// Nil fields are left untouched.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
