package dto

import "github.com/hostelops/dormdesk/internal/app/models"

// CreateComplaintRequest represents a complaint submission
type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
	Priority    string `json:"priority"`
}

// UpdateStatusRequest represents an admin status update
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ComplaintFilters carries the optional equality filters for the admin
// complaint listing. Filters are AND-combined; empty fields are ignored.
type ComplaintFilters struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
}

// ComplaintResponse wraps a single complaint with a confirmation message
type ComplaintResponse struct {
	Message   string            `json:"message"`
	Complaint *models.Complaint `json:"complaint"`
}

// ComplaintListResponse wraps a complaint listing
type ComplaintListResponse struct {
	Complaints []models.Complaint `json:"complaints"`
}

// StatsResponse wraps the admin dashboard counters
type StatsResponse struct {
	Stats *models.ComplaintStats `json:"stats"`
}
