package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository defines the interface for project data operations.
// Every method is scoped by the owning user id.
type ProjectRepository interface {
	FindAll(ctx context.Context, userID int64) ([]models.Project, error)
	FindByID(ctx context.Context, userID, projectID int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	DeleteCascade(ctx context.Context, userID, projectID int64) (*models.Project, error)
}

type projectRepository struct {
	store
}

// NewProjectRepository creates a new ProjectRepository instance.
func NewProjectRepository(db *gorm.DB, timeout time.Duration) ProjectRepository {
	return &projectRepository{store: newStore(db, timeout)}
}

func (r *projectRepository) FindAll(ctx context.Context, userID int64) ([]models.Project, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var projects []models.Project
	if err := db.Where("user_id = ?", userID).Order("id").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects of user %d: %w", userID, translate(err))
	}
	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var project models.Project
	err := db.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find project %d: %w", projectID, translate(err))
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", translate(err))
	}
	return nil
}

// DeleteCascade removes the project's tasks, then its progress entries, then
// the project row, all in one transaction. A project that is missing or owned
// by someone else yields ErrNotFound and nothing is deleted.
func (r *projectRepository) DeleteCascade(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var project models.Project
	err := db.Transaction(func(tx *gorm.DB) error {
		// FOR UPDATE is ignored by sqlite; postgres holds the row until commit.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", projectID, userID).
			First(&project).Error
		if err != nil {
			return fmt.Errorf("failed to find project %d: %w", projectID, translate(err))
		}

		progressIDs := tx.Model(&models.Progress{}).Select("id").
			Where("project_id = ? AND user_id = ?", projectID, userID)
		if err := tx.Where("progress_id IN (?)", progressIDs).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks of project %d: %w", projectID, err)
		}

		err = tx.Where("project_id = ? AND user_id = ?", projectID, userID).Delete(&models.Progress{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete progress of project %d: %w", projectID, err)
		}

		result := tx.Where("id = ? AND user_id = ?", projectID, userID).Delete(&models.Project{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete project %d: %w", projectID, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to delete project %d: %w", projectID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}
