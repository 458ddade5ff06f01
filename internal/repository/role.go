package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/gorm"
)

// RoleRepository defines the interface for role data operations.
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByValue(ctx context.Context, value string) (*models.Role, error)
}

type roleRepository struct {
	store
}

// NewRoleRepository creates a new RoleRepository instance.
func NewRoleRepository(db *gorm.DB, timeout time.Duration) RoleRepository {
	return &roleRepository{store: newStore(db, timeout)}
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	if err := db.Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role %s: %w", role.Value, translate(err))
	}
	return nil
}

func (r *roleRepository) FindByValue(ctx context.Context, value string) (*models.Role, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var role models.Role
	if err := db.Where("value = ?", value).First(&role).Error; err != nil {
		return nil, fmt.Errorf("failed to find role %s: %w", value, translate(err))
	}
	return &role, nil
}
