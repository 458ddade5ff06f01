package service

import (
	"context"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// ProjectService exposes the caller's projects. userID always comes from
// verified token claims.
type ProjectService interface {
	List(ctx context.Context, userID int64) ([]models.Project, error)
	Get(ctx context.Context, userID, projectID int64) (*models.Project, error)
	Create(ctx context.Context, userID int64, name string) (*models.Project, error)
	Delete(ctx context.Context, userID, projectID int64) (*models.Project, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, userID, projectID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, userID int64, name string) (*models.Project, error) {
	project := &models.Project{Name: name, UserID: userID}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, mapStoreError(err)
	}
	return project, nil
}

// Delete removes the project with all its progress entries and tasks.
// Nothing is removed when the caller does not own the project.
func (s *projectService) Delete(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	project, err := s.projectRepo.DeleteCascade(ctx, userID, projectID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return project, nil
}
