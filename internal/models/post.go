package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a post row in the database
type PostDB struct {
	PostID      uuid.UUID `json:"_id" db:"id"`                   // Unique post identifier
	Title       string    `json:"title" db:"title"`              // Post title
	Content     string    `json:"content" db:"content"`          // Post body
	DateCreated time.Time `json:"dateCreated" db:"date_created"` // Server-assigned creation time
	CreatedBy   uuid.UUID `json:"createdBy" db:"created_by"`     // Owning user
}
