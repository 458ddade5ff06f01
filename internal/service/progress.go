package service

import (
	"context"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// ProgressService manages progress entries of the caller's projects.
type ProgressService interface {
	List(ctx context.Context, userID, projectID int64) ([]models.Progress, error)
	Create(ctx context.Context, userID, projectID int64, title string) (*models.Progress, error)
	Delete(ctx context.Context, userID, projectID, progressID int64) error
}

type progressService struct {
	projectRepo  repository.ProjectRepository
	progressRepo repository.ProgressRepository
}

// NewProgressService creates a new ProgressService.
func NewProgressService(projectRepo repository.ProjectRepository, progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{projectRepo: projectRepo, progressRepo: progressRepo}
}

func (s *progressService) List(ctx context.Context, userID, projectID int64) ([]models.Progress, error) {
	if _, err := s.projectRepo.FindByID(ctx, userID, projectID); err != nil {
		return nil, mapStoreError(err)
	}

	entries, err := s.progressRepo.List(ctx, userID, projectID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return entries, nil
}

func (s *progressService) Create(ctx context.Context, userID, projectID int64, title string) (*models.Progress, error) {
	if _, err := s.projectRepo.FindByID(ctx, userID, projectID); err != nil {
		return nil, mapStoreError(err)
	}

	progress := &models.Progress{Title: title, ProjectID: projectID, UserID: userID}
	if err := s.progressRepo.Create(ctx, progress); err != nil {
		return nil, mapStoreError(err)
	}
	return progress, nil
}

func (s *progressService) Delete(ctx context.Context, userID, projectID, progressID int64) error {
	return mapStoreError(s.progressRepo.DeleteCascade(ctx, userID, projectID, progressID))
}
