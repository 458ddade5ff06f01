package service

import (
	"context"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// TaskService manages tasks under a progress entry the caller owns.
type TaskService interface {
	List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error)
	Create(ctx context.Context, userID, projectID, progressID int64, title, description string) (*models.Task, error)
	Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error
}

type taskService struct {
	progressRepo repository.ProgressRepository
	taskRepo     repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(progressRepo repository.ProgressRepository, taskRepo repository.TaskRepository) TaskService {
	return &taskService{progressRepo: progressRepo, taskRepo: taskRepo}
}

func (s *taskService) List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error) {
	if _, err := s.progressRepo.FindByID(ctx, userID, projectID, progressID); err != nil {
		return nil, mapStoreError(err)
	}

	tasks, err := s.taskRepo.List(ctx, userID, projectID, progressID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return tasks, nil
}

func (s *taskService) Create(ctx context.Context, userID, projectID, progressID int64, title, description string) (*models.Task, error) {
	if _, err := s.progressRepo.FindByID(ctx, userID, projectID, progressID); err != nil {
		return nil, mapStoreError(err)
	}

	task := &models.Task{Title: title, Description: description, ProgressID: progressID}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, mapStoreError(err)
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error {
	return mapStoreError(s.taskRepo.Delete(ctx, userID, projectID, progressID, taskID))
}
