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

// AdminService handles the administrative complaint surface
type AdminService struct {
	complaintRepo repositories.IComplaintRepository
	logger        zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(complaintRepo repositories.IComplaintRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

// ListAll returns all complaints matching the supplied filters, each joined
// with the owner's public fields, newest first.
func (s *AdminService) ListAll(ctx context.Context, filters dto.ComplaintFilters) ([]models.Complaint, error) {
	return s.complaintRepo.ListAll(ctx, filters)
}

// UpdateStatus sets a complaint's status. No transition ordering is enforced;
// an admin may move a complaint between any two statuses.
func (s *AdminService) UpdateStatus(ctx context.Context, complaintID int64, status string) (*models.Complaint, error) {
	newStatus := models.Status(status)
	if !newStatus.IsValid() {
		names := make([]string, 0, len(models.Statuses()))
		for _, st := range models.Statuses() {
			names = append(names, string(st))
		}
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("Invalid status. Must be one of: %s", strings.Join(names, ", ")))
	}

	complaint, err := s.complaintRepo.UpdateStatus(ctx, complaintID, newStatus)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("complaintID", complaintID).
		Str("status", status).
		Msg("Complaint status updated")

	return complaint, nil
}

// Stats returns the dashboard counters across all complaints
func (s *AdminService) Stats(ctx context.Context) (*models.ComplaintStats, error) {
	return s.complaintRepo.Stats(ctx)
}
