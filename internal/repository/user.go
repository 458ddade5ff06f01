package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	CreateWithRole(ctx context.Context, user *models.User, roleValue string) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	GetUserRoles(ctx context.Context, userID int64) ([]models.Role, error)
}

type userRepository struct {
	store
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &userRepository{store: newStore(db, timeout)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var user models.User
	err := db.Preload("Roles.Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email %s: %w", email, translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var user models.User
	err := db.Preload("Roles.Role").First(&user, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id %d: %w", id, translate(err))
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var users []models.User
	if err := db.Preload("Roles.Role").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", translate(err))
	}
	return users, nil
}

// CreateWithRole inserts the user and assigns roleValue in one transaction.
// A missing role rolls the insert back.
func (r *userRepository) CreateWithRole(ctx context.Context, user *models.User, roleValue string) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where("value = ?", roleValue).First(&role).Error; err != nil {
			return fmt.Errorf("failed to find role %s: %w", roleValue, translate(err))
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", translate(err))
		}
		userRole := models.UserRole{UserID: user.ID, RoleID: role.ID}
		if err := tx.Create(&userRole).Error; err != nil {
			return fmt.Errorf("failed to assign role %s to user %d: %w", roleValue, user.ID, translate(err))
		}
		userRole.Role = &role
		user.Roles = []models.UserRole{userRole}
		return nil
	})
	return translate(err)
}

// Update replaces email and password hash of an existing user.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	result := db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user id %d: %w", user.ID, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update user id %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the user together with role assignments and every project,
// progress entry and task the user owns.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	db, cancel := r.conn(ctx)
	defer cancel()

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Select("id").First(&user, id).Error; err != nil {
			return fmt.Errorf("failed to find user by id %d: %w", id, translate(err))
		}

		progressIDs := tx.Model(&models.Progress{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("progress_id IN (?)", progressIDs).Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks of user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Progress{}).Error; err != nil {
			return fmt.Errorf("failed to delete progress of user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return fmt.Errorf("failed to delete projects of user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return fmt.Errorf("failed to delete roles of user %d: %w", id, err)
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("failed to delete user %d: %w", id, ErrNotFound)
		}
		return nil
	})
	return translate(err)
}

func (r *userRepository) GetUserRoles(ctx context.Context, userID int64) ([]models.Role, error) {
	db, cancel := r.conn(ctx)
	defer cancel()

	var user models.User
	if err := db.Select("id").First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", userID, translate(err))
	}

	var roles []models.Role
	err := db.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.id").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user %d: %w", userID, translate(err))
	}
	return roles, nil
}
