package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles carried in the token role claim.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// AccountTypeUnpaid is the tier every user starts with.
const AccountTypeUnpaid = "unpaid"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID   `json:"_id" db:"id"`               // Primary key
	FirstName    string      `json:"firstName" db:"first_name"` // First name
	LastName     string      `json:"lastName" db:"last_name"`   // Last name
	Username     string      `json:"username" db:"username"`    // Unique username
	Email        string      `json:"email" db:"email"`          // User email
	PasswordHash string      `json:"-" db:"password_hash"`      // Hashed password, never serialized
	AccountType  string      `json:"type" db:"account_type"`    // Account tier
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"` // Last update timestamp
	Followers    []uuid.UUID `json:"followers" db:"-"`          // Users following this user
	Following    []uuid.UUID `json:"following" db:"-"`          // Users this user follows
}
