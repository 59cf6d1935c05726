package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`                      // Unique identifier for the user
	Name         string    `json:"name" db:"name"`                  // Display name (2-100 chars)
	Email        string    `json:"email" db:"email"`                // Unique email address
	PasswordHash string    `json:"-" db:"password_hash"`            // Hashed password (never serialized)
	Role         Role      `json:"role" db:"role"`                  // Account role (student or admin)
	Block        *string   `json:"block,omitempty" db:"block"`      // Hostel block (nullable)
	Room         *string   `json:"room,omitempty" db:"room"`        // Room number (nullable)
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Timestamp when the user was created
}

// UserSummary carries the owner's public fields joined onto an admin
// complaint listing. The password hash and role are never exposed here.
type UserSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Block *string `json:"block,omitempty"`
	Room  *string `json:"room,omitempty"`
}

// Summary returns the user's public fields.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Block: u.Block,
		Room:  u.Room,
	}
}
