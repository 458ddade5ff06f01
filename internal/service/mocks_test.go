package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/repository"
)

var errNotImplemented = errors.New("not implemented")

// =============================================================================
// Mock UserRepository
// =============================================================================

type mockUserRepository struct {
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	findByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	findAllFunc        func(ctx context.Context) ([]models.User, error)
	createWithRoleFunc func(ctx context.Context, user *models.User, roleValue string) error
	updateFunc         func(ctx context.Context, user *models.User) error
	deleteFunc         func(ctx context.Context, id int64) error
	getUserRolesFunc   func(ctx context.Context, userID int64) ([]models.Role, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockUserRepository) CreateWithRole(ctx context.Context, user *models.User, roleValue string) error {
	if m.createWithRoleFunc != nil {
		return m.createWithRoleFunc(ctx, user, roleValue)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return errNotImplemented
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockUserRepository) GetUserRoles(ctx context.Context, userID int64) ([]models.Role, error) {
	if m.getUserRolesFunc != nil {
		return m.getUserRolesFunc(ctx, userID)
	}
	// Default: a plain user
	return []models.Role{{ID: 2, Value: "User"}}, nil
}

// =============================================================================
// In-memory UserRepository
// =============================================================================

// memUserRepository keeps users in a map and enforces unique emails.
type memUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
	roles  map[string]models.Role
	links  map[int64][]string
}

func newMemUserRepository(roleValues ...string) *memUserRepository {
	r := &memUserRepository{
		users: make(map[int64]*models.User),
		roles: make(map[string]models.Role),
		links: make(map[int64][]string),
	}
	for i, v := range roleValues {
		r.roles[v] = models.Role{ID: int64(i + 1), Value: v}
	}
	return r
}

func (r *memUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("failed to find user by email %s: %w", email, repository.ErrNotFound)
}

func (r *memUserRepository) FindByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepository) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepository) CreateWithRole(_ context.Context, user *models.User, roleValue string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.roles[roleValue]; !ok {
		return fmt.Errorf("failed to find role %s: %w", roleValue, repository.ErrNotFound)
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("failed to create user: %w", repository.ErrDuplicate)
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	r.links[user.ID] = []string{roleValue}
	return nil
}

func (r *memUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	existing.Email = user.Email
	existing.PasswordHash = user.PasswordHash
	return nil
}

func (r *memUserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	delete(r.links, id)
	return nil
}

func (r *memUserRepository) GetUserRoles(_ context.Context, userID int64) ([]models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userID]; !ok {
		return nil, repository.ErrNotFound
	}
	out := make([]models.Role, 0, len(r.links[userID]))
	for _, v := range r.links[userID] {
		out = append(out, r.roles[v])
	}
	return out, nil
}

func (r *memUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// =============================================================================
// Mock RoleRepository
// =============================================================================

type mockRoleRepository struct {
	createFunc      func(ctx context.Context, role *models.Role) error
	findByValueFunc func(ctx context.Context, value string) (*models.Role, error)
}

func (m *mockRoleRepository) Create(ctx context.Context, role *models.Role) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, role)
	}
	return errNotImplemented
}

func (m *mockRoleRepository) FindByValue(ctx context.Context, value string) (*models.Role, error) {
	if m.findByValueFunc != nil {
		return m.findByValueFunc(ctx, value)
	}
	return nil, errNotImplemented
}

// =============================================================================
// Mock ProjectRepository
// =============================================================================

type mockProjectRepository struct {
	findAllFunc       func(ctx context.Context, userID int64) ([]models.Project, error)
	findByIDFunc      func(ctx context.Context, userID, projectID int64) (*models.Project, error)
	createFunc        func(ctx context.Context, project *models.Project) error
	deleteCascadeFunc func(ctx context.Context, userID, projectID int64) (*models.Project, error)
}

func (m *mockProjectRepository) FindAll(ctx context.Context, userID int64) ([]models.Project, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockProjectRepository) FindByID(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

func (m *mockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, project)
	}
	return errNotImplemented
}

func (m *mockProjectRepository) DeleteCascade(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

// =============================================================================
// Mock ProgressRepository
// =============================================================================

type mockProgressRepository struct {
	listFunc          func(ctx context.Context, userID, projectID int64) ([]models.Progress, error)
	findByIDFunc      func(ctx context.Context, userID, projectID, progressID int64) (*models.Progress, error)
	createFunc        func(ctx context.Context, progress *models.Progress) error
	deleteCascadeFunc func(ctx context.Context, userID, projectID, progressID int64) error
}

func (m *mockProgressRepository) List(ctx context.Context, userID, projectID int64) ([]models.Progress, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

func (m *mockProgressRepository) FindByID(ctx context.Context, userID, projectID, progressID int64) (*models.Progress, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, userID, projectID, progressID)
	}
	return nil, errNotImplemented
}

func (m *mockProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, progress)
	}
	return errNotImplemented
}

func (m *mockProgressRepository) DeleteCascade(ctx context.Context, userID, projectID, progressID int64) error {
	if m.deleteCascadeFunc != nil {
		return m.deleteCascadeFunc(ctx, userID, projectID, progressID)
	}
	return errNotImplemented
}

// =============================================================================
// Mock TaskRepository
// =============================================================================

type mockTaskRepository struct {
	listFunc   func(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error)
	createFunc func(ctx context.Context, task *models.Task) error
	deleteFunc func(ctx context.Context, userID, projectID, progressID, taskID int64) error
}

func (m *mockTaskRepository) List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, projectID, progressID)
	}
	return nil, errNotImplemented
}

func (m *mockTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, task)
	}
	return errNotImplemented
}

func (m *mockTaskRepository) Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, projectID, progressID, taskID)
	}
	return errNotImplemented
}
