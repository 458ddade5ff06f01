package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/middleware"
	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/service"
)

var errNotImplemented = errors.New("not implemented")

// =============================================================================
// Mock Implementations
// =============================================================================

type mockAuthService struct {
	loginFunc         func(ctx context.Context, email, password string) (string, error)
	registerFunc      func(ctx context.Context, email, password string) (string, error)
	issueTokenFunc    func(ctx context.Context, user *models.User) (string, error)
	validateTokenFunc func(token string) (int64, *service.Claims, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return "", errNotImplemented
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, email, password)
	}
	return "", errNotImplemented
}

func (m *mockAuthService) IssueToken(ctx context.Context, user *models.User) (string, error) {
	if m.issueTokenFunc != nil {
		return m.issueTokenFunc(ctx, user)
	}
	return "", errNotImplemented
}

func (m *mockAuthService) ValidateToken(token string) (int64, *service.Claims, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(token)
	}
	return 0, nil, errNotImplemented
}

type mockUserService struct {
	listFunc       func(ctx context.Context) ([]models.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	createFunc     func(ctx context.Context, email, password string) (*models.User, error)
	updateFunc     func(ctx context.Context, id int64, email, password string) (*models.User, error)
	deleteFunc     func(ctx context.Context, id int64) error
	getRolesFunc   func(ctx context.Context, id int64) ([]models.Role, error)
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Create(ctx context.Context, email, password string) (*models.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, email, password)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Update(ctx context.Context, id int64, email, password string) (*models.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, email, password)
	}
	return nil, errNotImplemented
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errNotImplemented
}

func (m *mockUserService) GetRoles(ctx context.Context, id int64) ([]models.Role, error) {
	if m.getRolesFunc != nil {
		return m.getRolesFunc(ctx, id)
	}
	return nil, errNotImplemented
}

type mockRoleService struct {
	createFunc     func(ctx context.Context, value, description string) (*models.Role, error)
	getByValueFunc func(ctx context.Context, value string) (*models.Role, error)
}

func (m *mockRoleService) Create(ctx context.Context, value, description string) (*models.Role, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, value, description)
	}
	return nil, errNotImplemented
}

func (m *mockRoleService) GetByValue(ctx context.Context, value string) (*models.Role, error) {
	if m.getByValueFunc != nil {
		return m.getByValueFunc(ctx, value)
	}
	return nil, errNotImplemented
}

type mockProjectService struct {
	listFunc   func(ctx context.Context, userID int64) ([]models.Project, error)
	getFunc    func(ctx context.Context, userID, projectID int64) (*models.Project, error)
	createFunc func(ctx context.Context, userID int64, name string) (*models.Project, error)
	deleteFunc func(ctx context.Context, userID, projectID int64) (*models.Project, error)
}

func (m *mockProjectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, errNotImplemented
}

func (m *mockProjectService) Get(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

func (m *mockProjectService) Create(ctx context.Context, userID int64, name string) (*models.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, name)
	}
	return nil, errNotImplemented
}

func (m *mockProjectService) Delete(ctx context.Context, userID, projectID int64) (*models.Project, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

type mockProgressService struct {
	listFunc   func(ctx context.Context, userID, projectID int64) ([]models.Progress, error)
	createFunc func(ctx context.Context, userID, projectID int64, title string) (*models.Progress, error)
	deleteFunc func(ctx context.Context, userID, projectID, progressID int64) error
}

func (m *mockProgressService) List(ctx context.Context, userID, projectID int64) ([]models.Progress, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, projectID)
	}
	return nil, errNotImplemented
}

func (m *mockProgressService) Create(ctx context.Context, userID, projectID int64, title string) (*models.Progress, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, projectID, title)
	}
	return nil, errNotImplemented
}

func (m *mockProgressService) Delete(ctx context.Context, userID, projectID, progressID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, projectID, progressID)
	}
	return errNotImplemented
}

type mockTaskService struct {
	listFunc   func(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error)
	createFunc func(ctx context.Context, userID, projectID, progressID int64, title, description string) (*models.Task, error)
	deleteFunc func(ctx context.Context, userID, projectID, progressID, taskID int64) error
}

func (m *mockTaskService) List(ctx context.Context, userID, projectID, progressID int64) ([]models.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, projectID, progressID)
	}
	return nil, errNotImplemented
}

func (m *mockTaskService) Create(ctx context.Context, userID, projectID, progressID int64, title, description string) (*models.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, projectID, progressID, title, description)
	}
	return nil, errNotImplemented
}

func (m *mockTaskService) Delete(ctx context.Context, userID, projectID, progressID, taskID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, projectID, progressID, taskID)
	}
	return errNotImplemented
}

// =============================================================================
// Test Helpers
// =============================================================================

func createTestContext(method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	c.Request = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// asUser marks the context as authenticated for userID.
func asUser(c *gin.Context, userID int64, roles ...string) {
	if roles == nil {
		roles = []string{}
	}
	middleware.SetClaims(c, &service.Claims{ID: userID, Email: "alice@example.com", Roles: roles})
}

func withParams(c *gin.Context, kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: kv[i], Value: kv[i+1]})
	}
}

func decodeError(w *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Error
}
