package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/dormdesk/internal/app/models"
	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/pkg/apperrors"
)

func TestAdminService_ListAll(t *testing.T) {
	filters := dto.ComplaintFilters{Status: "Pending", Category: "Plumbing"}

	repo := new(MockComplaintRepository)
	repo.On("ListAll", mock.Anything, filters).Return([]models.Complaint{{ID: 1}}, nil)

	svc := NewAdminService(repo, zerolog.Nop())

	complaints, err := svc.ListAll(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, complaints, 1)
	repo.AssertExpectations(t)
}

func TestAdminService_UpdateStatus(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("UpdateStatus", mock.Anything, int64(5), models.StatusResolved).Return(&models.Complaint{
		ID: 5, Status: models.StatusResolved,
	}, nil)

	svc := NewAdminService(repo, zerolog.Nop())

	complaint, err := svc.UpdateStatus(context.Background(), 5, "Resolved")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, complaint.Status)
	repo.AssertExpectations(t)
}

func TestAdminService_UpdateStatus_AnyTransition(t *testing.T) {
	// Resolved back to Pending is allowed; statuses form no ordering.
	repo := new(MockComplaintRepository)
	repo.On("UpdateStatus", mock.Anything, int64(5), models.StatusPending).Return(&models.Complaint{
		ID: 5, Status: models.StatusPending,
	}, nil)

	svc := NewAdminService(repo, zerolog.Nop())

	complaint, err := svc.UpdateStatus(context.Background(), 5, "Pending")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaint.Status)
}

func TestAdminService_UpdateStatus_Invalid(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := NewAdminService(repo, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 5, "Closed")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.EqualError(t, err, "Invalid status. Must be one of: Pending, In Progress, Resolved")
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_UpdateStatus_NotFound(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("UpdateStatus", mock.Anything, int64(404), models.StatusResolved).
		Return(nil, apperrors.ErrComplaintNotFound)

	svc := NewAdminService(repo, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 404, "Resolved")
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestAdminService_Stats(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("Stats", mock.Anything).Return(&models.ComplaintStats{
		Total: 10, Pending: 4, InProgress: 3, Resolved: 3,
	}, nil)

	svc := NewAdminService(repo, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.Pending)
	assert.Equal(t, int64(3), stats.InProgress)
	assert.Equal(t, int64(3), stats.Resolved)
}
