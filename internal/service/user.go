package service

import (
	"context"
	"fmt"
	"time"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

// UsersCacheKey is the cache key of the full user listing.
const UsersCacheKey = "users"

// Cache is a lookaside store for serialisable values.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// UserService manages accounts on behalf of administrators.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, password string) (*models.User, error)
	Update(ctx context.Context, id int64, email, password string) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	GetRoles(ctx context.Context, id int64) ([]models.Role, error)
}

type userService struct {
	userRepo    repository.UserRepository
	hasher      PasswordHasher
	cache       Cache
	cacheTTL    time.Duration
	defaultRole string
}

// NewUserService creates a new UserService. cache may be nil, in which case
// every listing reads the store.
func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher, cache Cache, cacheTTL time.Duration, defaultRole string) UserService {
	return &userService{
		userRepo:    userRepo,
		hasher:      hasher,
		cache:       cache,
		cacheTTL:    cacheTTL,
		defaultRole: defaultRole,
	}
}

// List returns all users. A cached listing is served until its TTL runs out;
// writes do not invalidate it.
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	if s.cache != nil {
		var cached []models.User
		if ok, err := s.cache.Get(ctx, UsersCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, UsersCacheKey, users, s.cacheTTL)
	}
	return users, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, email, password string) (*models.User, error) {
	return createAccount(ctx, s.userRepo, s.hasher, email, password, s.defaultRole)
}

// Update replaces email and password. The new password is stored hashed.
func (s *userService) Update(ctx context.Context, id int64, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %w", ErrInternal, err)
	}

	if err := s.userRepo.Update(ctx, &models.User{ID: id, Email: email, PasswordHash: hash}); err != nil {
		return nil, mapStoreError(err)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return mapStoreError(s.userRepo.Delete(ctx, id))
}

func (s *userService) GetRoles(ctx context.Context, id int64) ([]models.Role, error) {
	roles, err := s.userRepo.GetUserRoles(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return roles, nil
}
