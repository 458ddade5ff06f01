package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/service"
	"go.uber.org/zap"
)

// ProjectHandler serves projects, progress entries and tasks of the caller.
type ProjectHandler struct {
	projectService  service.ProjectService
	progressService service.ProgressService
	taskService     service.TaskService
	logger          *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler instance.
func NewProjectHandler(projects service.ProjectService, progress service.ProgressService, tasks service.TaskService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService:  projects,
		progressService: progress,
		taskService:     tasks,
		logger:          logger,
	}
}

// ProjectRequest is the payload for creating a project.
type ProjectRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// ProgressRequest is the payload for creating a progress entry.
type ProgressRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

// TaskRequest is the payload for creating a task.
type TaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

// ListProjects godoc
// @Summary List own projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), userID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProjectRequest true "Project"
// @Success 201 {object} models.Project
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
// @Summary Get own project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete own project
// @Description Delete the project with all its progress entries and tasks in one transaction
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.Delete(c.Request.Context(), userID, projectID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListProgress godoc
// @Summary List progress entries of a project
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {array} models.Progress
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress [get]
func (h *ProjectHandler) ListProgress(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}

	entries, err := h.progressService.List(c.Request.Context(), userID, projectID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateProgress godoc
// @Summary Add a progress entry to a project
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param request body ProgressRequest true "Progress"
// @Success 201 {object} models.Progress
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress [post]
func (h *ProjectHandler) CreateProgress(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	progress, err := h.progressService.Create(c.Request.Context(), userID, projectID, req.Title)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, progress)
}

// DeleteProgress godoc
// @Summary Delete a progress entry and its tasks
// @Tags progress
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param progressId path int true "Progress ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress/{progressId} [delete]
func (h *ProjectHandler) DeleteProgress(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}
	progressID, ok := paramID(c, "progressId")
	if !ok {
		return
	}

	if err := h.progressService.Delete(c.Request.Context(), userID, projectID, progressID); err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTasks godoc
// @Summary List tasks of a progress entry
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param projectId path int true "Project ID"
// @Param progressId path int true "Progress ID"
// @Success 200 {array} models.Task
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress/{progressId}/tasks [get]
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}
	progressID, ok := paramID(c, "progressId")
	if !ok {
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), userID, projectID, progressID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Add a task to a progress entry
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param progressId path int true "Progress ID"
// @Param request body TaskRequest true "Task"
// @Success 201 {object} models.Task
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress/{progressId}/tasks [post]
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}
	progressID, ok := paramID(c, "progressId")
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, projectID, progressID, req.Title, req.Description)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Security BearerAuth
// @Param projectId path int true "Project ID"
// @Param progressId path int true "Progress ID"
// @Param taskId path int true "Task ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /projects/{projectId}/progress/{progressId}/tasks/{taskId} [delete]
func (h *ProjectHandler) DeleteTask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "projectId")
	if !ok {
		return
	}
	progressID, ok := paramID(c, "progressId")
	if !ok {
		return
	}
	taskID, ok := paramID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, projectID, progressID, taskID); err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
