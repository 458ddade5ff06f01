package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/gorm"
)

// TaskRepository defines the interface for task data operations.
// Ownership is resolved through the parent progress entry.
type TaskRepository interface {
	List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error
}

type taskRepository struct {
	store
}

// NewTaskRepository creates a new TaskRepository instance.
func NewTaskRepository(db *gorm.DB, timeout time.Duration) TaskRepository {
	return &taskRepository{store: newStore(db, timeout)}
}

func ownedProgress(db *gorm.DB, userID, projectID, progressID int64) *gorm.DB {
	return db.Model(&models.Progress{}).Select("id").
		Where("id = ? AND project_id = ? AND user_id = ?", progressID, projectID, userID)
}

func (r *taskRepository) List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var tasks []models.Task
	err := db.Where("progress_id IN (?)", ownedProgress(db, userID, projectID, progressID)).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of progress %d: %w", progressID, translate(err))
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", translate(err))
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	result := db.
		Where("id = ? AND progress_id IN (?)", taskID, ownedProgress(db, userID, projectID, progressID)).
		Delete(&models.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete task %d: %w", taskID, ErrNotFound)
	}
	return nil
}
