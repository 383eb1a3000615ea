package models

import "time"

// CommentDB represents a comment row in the database
type CommentDB struct {
	ID         int64     `json:"id" db:"id"`                   // Primary key
	Text       string    `json:"text" db:"text"`               // Comment body
	ItemID     int64     `json:"item_id" db:"item_id"`         // Commented item
	AuthorID   int64     `json:"author_id" db:"author_id"`     // Commenting user
	AuthorName string    `json:"author_name" db:"author_name"` // Display name of the author, joined at read time
	CreatedAt  time.Time `json:"created" db:"created_at"`      // Timestamp when the comment was posted
}
