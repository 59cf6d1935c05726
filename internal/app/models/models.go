package models

// Role defines the user account role
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Category defines the complaint category
type Category string

// Complaint categories
const (
	CategoryElectrical Category = "Electrical"
	CategoryPlumbing   Category = "Plumbing"
	CategoryInternet   Category = "Internet"
	CategoryCleaning   Category = "Cleaning"
	CategoryOther      Category = "Other"
)

// Priority defines the complaint priority
type Priority string

// Complaint priorities
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Status defines the complaint processing status. Any status is
// admin-settable from any other status; no ordering is enforced.
type Status string

// Complaint statuses
const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Categories lists all valid complaint categories in display order.
func Categories() []Category {
	return []Category{CategoryElectrical, CategoryPlumbing, CategoryInternet, CategoryCleaning, CategoryOther}
}

// Priorities lists all valid complaint priorities in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Statuses lists all valid complaint statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryInternet, CategoryCleaning, CategoryOther:
		return true
	}
	return false
}

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
