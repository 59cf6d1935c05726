package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hostelops/dormdesk/internal/app/models"
	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/pkg/apperrors"
	"github.com/hostelops/dormdesk/internal/pkg/logger"
)

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new complaint and fills in its generated ID and timestamps
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO complaints (user_id, category, description, priority, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		complaint.UserID, complaint.Category, complaint.Description,
		complaint.Priority, complaint.Status).
		Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}

	return nil
}

// GetByID retrieves a complaint by ID
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, category, description, priority, status, created_at, updated_at
		FROM complaints
		WHERE id = $1`,
		id).Scan(
		&complaint.ID, &complaint.UserID, &complaint.Category, &complaint.Description,
		&complaint.Priority, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error fetching complaint: %w", err)
	}

	return complaint, nil
}

// ListByUser retrieves all complaints owned by a user, newest first
func (r *ComplaintRepository) ListByUser(ctx context.Context, userID int64) ([]models.Complaint, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, category, description, priority, status, created_at, updated_at
		FROM complaints
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Category, &c.Description,
			&c.Priority, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// ListAll retrieves all complaints matching the supplied equality filters
// (AND-combined), each joined with the owner's public fields, newest first.
func (r *ComplaintRepository) ListAll(ctx context.Context, filters dto.ComplaintFilters) ([]models.Complaint, error) {
	query := r.sb.Select(
		"c.id", "c.user_id", "c.category", "c.description", "c.priority",
		"c.status", "c.created_at", "c.updated_at",
		"u.id", "u.name", "u.email", "u.block", "u.room",
	).
		From("complaints c").
		Join("users u ON c.user_id = u.id")

	whereCondition := squirrel.And{}
	if filters.Category != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"c.category": filters.Category})
	}
	if filters.Status != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"c.status": filters.Status})
	}
	if filters.Priority != "" {
		whereCondition = append(whereCondition, squirrel.Eq{"c.priority": filters.Priority})
	}
	if len(whereCondition) > 0 {
		query = query.Where(whereCondition)
	}

	query = query.OrderBy("c.created_at DESC")

	querySql, queryArgs, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list complaints SQL")
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		return nil, fmt.Errorf("error listing complaints: %w", err)
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		var owner models.UserSummary
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Category, &c.Description, &c.Priority,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
			&owner.ID, &owner.Name, &owner.Email, &owner.Block, &owner.Room)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		c.User = &owner
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// UpdateStatus sets a complaint's status and returns the updated record
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	err := r.db.QueryRow(ctx, `
		UPDATE complaints
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, category, description, priority, status, created_at, updated_at`,
		status, id).Scan(
		&complaint.ID, &complaint.UserID, &complaint.Category, &complaint.Description,
		&complaint.Priority, &complaint.Status, &complaint.CreatedAt, &complaint.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("error updating complaint status: %w", err)
	}

	return complaint, nil
}

// Delete removes a complaint by ID
func (r *ComplaintRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}

// Stats returns the total and per-status complaint counts
func (r *ComplaintRepository) Stats(ctx context.Context) (*models.ComplaintStats, error) {
	stats := &models.ComplaintStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'In Progress'),
			COUNT(*) FILTER (WHERE status = 'Resolved')
		FROM complaints`).
		Scan(&stats.Total, &stats.Pending, &stats.InProgress, &stats.Resolved)

	if err != nil {
		return nil, fmt.Errorf("error counting complaints: %w", err)
	}

	return stats, nil
}
