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

func TestComplaintService_Create(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Complaint")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Complaint).ID = 5
		}).
		Return(nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	complaint, err := svc.Create(context.Background(), 42, &dto.CreateComplaintRequest{
		Category:    "Plumbing",
		Description: "The tap in room 101 has been leaking for two days.",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), complaint.ID)
	assert.Equal(t, int64(42), complaint.UserID)
	assert.Equal(t, models.CategoryPlumbing, complaint.Category)
	assert.Equal(t, models.PriorityMedium, complaint.Priority, "omitted priority defaults to Medium")
	assert.Equal(t, models.StatusPending, complaint.Status, "new complaints always start Pending")
	repo.AssertExpectations(t)
}

func TestComplaintService_Create_ExplicitPriority(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	complaint, err := svc.Create(context.Background(), 42, &dto.CreateComplaintRequest{
		Category:    "Electrical",
		Description: "Sparks from the socket next to the study desk.",
		Priority:    "High",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, complaint.Priority)
}

func TestComplaintService_Create_InvalidCategory(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := NewComplaintService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), 42, &dto.CreateComplaintRequest{
		Category:    "Heating",
		Description: "The radiator in my room never warms up.",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.EqualError(t, err, "Invalid category. Must be one of: Electrical, Plumbing, Internet, Cleaning, Other")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestComplaintService_Create_InvalidPriority(t *testing.T) {
	repo := new(MockComplaintRepository)
	svc := NewComplaintService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), 42, &dto.CreateComplaintRequest{
		Category:    "Internet",
		Description: "WiFi keeps dropping every few minutes in Block B.",
		Priority:    "Urgent",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.EqualError(t, err, "Invalid priority. Must be one of: Low, Medium, High")
}

func TestComplaintService_ListMine(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("ListByUser", mock.Anything, int64(42)).Return([]models.Complaint{
		{ID: 2, UserID: 42}, {ID: 1, UserID: 42},
	}, nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	complaints, err := svc.ListMine(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, complaints, 2)
	repo.AssertExpectations(t)
}

func TestComplaintService_Delete(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&models.Complaint{
		ID: 5, UserID: 42, Status: models.StatusPending,
	}, nil)
	repo.On("Delete", mock.Anything, int64(5)).Return(nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 42, 5)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestComplaintService_Delete_NotOwner(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&models.Complaint{
		ID: 5, UserID: 99, Status: models.StatusPending,
	}, nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 42, 5)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.EqualError(t, err, "You can only delete your own complaints.")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestComplaintService_Delete_NotPending(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&models.Complaint{
		ID: 5, UserID: 42, Status: models.StatusInProgress,
	}, nil)

	svc := NewComplaintService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 42, 5)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.EqualError(t, err, "Only pending complaints can be deleted.")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestComplaintService_Delete_NotFound(t *testing.T) {
	repo := new(MockComplaintRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, apperrors.ErrComplaintNotFound)

	svc := NewComplaintService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 42, 5)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}
