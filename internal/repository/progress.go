package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/gorm"
)

// ProgressRepository defines the interface for progress data operations.
type ProgressRepository interface {
	List(ctx context.Context, userID, projectID int64) ([]models.Progress, error)
	FindByID(ctx context.Context, userID, projectID, progressID int64) (*models.Progress, error)
	Create(ctx context.Context, progress *models.Progress) error
	DeleteCascade(ctx context.Context, userID, projectID, progressID int64) error
}

type progressRepository struct {
	store
}

// NewProgressRepository creates a new ProgressRepository instance.
func NewProgressRepository(db *gorm.DB, timeout time.Duration) ProgressRepository {
	return &progressRepository{store: newStore(db, timeout)}
}

func (r *progressRepository) List(ctx context.Context, userID, projectID int64) ([]models.Progress, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var entries []models.Progress
	err := db.Where("project_id = ? AND user_id = ?", projectID, userID).Order("id").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list progress of project %d: %w", projectID, translate(err))
	}
	return entries, nil
}

func (r *progressRepository) FindByID(ctx context.Context, userID, projectID, progressID int64) (*models.Progress, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var progress models.Progress
	err := db.Where("id = ? AND project_id = ? AND user_id = ?", progressID, projectID, userID).
		First(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find progress %d: %w", progressID, translate(err))
	}
	return &progress, nil
}

func (r *progressRepository) Create(ctx context.Context, progress *models.Progress) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(progress).Error; err != nil {
		return fmt.Errorf("failed to create progress: %w", translate(err))
	}
	return nil
}

// DeleteCascade removes a progress entry and its tasks in one transaction.
func (r *progressRepository) DeleteCascade(ctx context.Context, userID, projectID, progressID int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var progress models.Progress
		err := tx.Select("id").
			Where("id = ? AND project_id = ? AND user_id = ?", progressID, projectID, userID).
			First(&progress).Error
		if err != nil {
			return fmt.Errorf("failed to find progress %d: %w", progressID, translate(err))
		}

		if err := tx.Where("progress_id = ?", progressID).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks of progress %d: %w", progressID, err)
		}

		result := tx.Where("id = ? AND user_id = ?", progressID, userID).Delete(&models.Progress{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete progress %d: %w", progressID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to delete progress %d: %w", progressID, ErrNotFound)
		}
		return nil
	})
	return translate(err)
}
