package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/dormdesk/internal/app/models"
	"github.com/hostelops/dormdesk/internal/app/models/dto"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// IComplaintRepository defines the interface for complaint-related database operations
type IComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Complaint, error)
	ListAll(ctx context.Context, filters dto.ComplaintFilters) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Complaint, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*models.ComplaintStats, error)
}

// Repositories holds all repository instances
type Repositories struct {
	UserRepository      *UserRepository
	ComplaintRepository *ComplaintRepository
}

// NewRepositories creates all repositories sharing a single connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
