package models

import (
	"time"
)

// Complaint defines the complaint model based on the 'complaints' table
type Complaint struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Category    Category  `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Priority    Priority  `json:"priority" db:"priority"`
	Status      Status    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	User        *UserSummary `json:"user,omitempty"` // Owner, populated on admin listings only
}

// ComplaintStats holds the aggregate counters for the admin dashboard.
type ComplaintStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}
