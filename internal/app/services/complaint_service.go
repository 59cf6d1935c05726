package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hostelops/dormdesk/internal/app/models"
	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/app/repositories"
	"github.com/hostelops/dormdesk/internal/pkg/apperrors"
)

// ComplaintService handles student-facing complaint operations
type ComplaintService struct {
	complaintRepo repositories.IComplaintRepository
	logger        zerolog.Logger
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo repositories.IComplaintRepository, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func joinCategories() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func joinPriorities() string {
	names := make([]string, 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

// Create validates and persists a new complaint for the given user. Priority
// defaults to Medium; status always starts Pending.
func (s *ComplaintService) Create(ctx context.Context, userID int64, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	category := models.Category(req.Category)
	if !category.IsValid() {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Invalid category. Must be one of: %s", joinCategories()))
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.Priority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.NewBadRequestError(
				fmt.Sprintf("Invalid priority. Must be one of: %s", joinPriorities()))
		}
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Category:    category,
		Description: req.Description,
		Priority:    priority,
		Status:      models.StatusPending,
	}

	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("complaintID", complaint.ID).
		Int64("userID", userID).
		Str("category", string(category)).
		Msg("Complaint submitted")

	return complaint, nil
}

// ListMine returns all complaints owned by the caller, newest first
func (s *ComplaintService) ListMine(ctx context.Context, userID int64) ([]models.Complaint, error) {
	return s.complaintRepo.ListByUser(ctx, userID)
}

// Delete removes a complaint. Only the owner may delete it, and only while
// its status is still Pending. The eligibility check and the delete are not
// atomic; a concurrent status update can race the check.
func (s *ComplaintService) Delete(ctx context.Context, userID, complaintID int64) error {
	complaint, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return err
	}

	if complaint.UserID != userID {
		return apperrors.NewForbiddenError("You can only delete your own complaints.")
	}

	if complaint.Status != models.StatusPending {
		return apperrors.NewBadRequestError("Only pending complaints can be deleted.")
	}

	if err := s.complaintRepo.Delete(ctx, complaintID); err != nil {
		return err
	}

	s.logger.Info().Int64("complaintID", complaintID).Int64("userID", userID).Msg("Complaint deleted")
	return nil
}
