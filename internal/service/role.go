package service

import (
	"context"
	"fmt"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// RoleService manages role definitions.
type RoleService interface {
	Create(ctx context.Context, value, description string) (*models.Role, error)
	GetByValue(ctx context.Context, value string) (*models.Role, error)
}

type roleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo repository.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) Create(ctx context.Context, value, description string) (*models.Role, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: role value is required", ErrInvalidInput)
	}
	role := &models.Role{Value: value, Description: description}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, mapStoreError(err)
	}
	return role, nil
}

func (s *roleService) GetByValue(ctx context.Context, value string) (*models.Role, error) {
	role, err := s.roleRepo.FindByValue(ctx, value)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return role, nil
}
