package models

import (
	"time"

	"github.com/google/uuid"
)

// ModeratorDB represents a moderator record in the database
type ModeratorDB struct {
	ModeratorID  uuid.UUID `json:"_id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
