package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/service"
	"go.uber.org/zap"
)

// UserHandler handles account management requests.
type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// UserRequest is the payload for creating or replacing a user.
type UserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// List godoc
// @Summary List users
// @Description List all users with their roles. Served from cache while it is fresh.
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary Create user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UserRequest true "New user"
// @Success 201 {object} models.User
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetByEmail godoc
// @Summary Get user by email
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Replace user email and password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserRequest true "Replacement"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req.Email, req.Password)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete user
// @Description Delete a user with role assignments and owned projects
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRoles godoc
// @Summary List roles of a user
// @Description GET routes under /users are keyed by email, so the user is resolved first
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "Email"
// @Success 200 {array} models.Role
// @Failure 404 {object} ErrorResponse
// @Router /users/{email}/roles [get]
func (h *UserHandler) GetRoles(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.userService.GetByEmail(ctx, c.Param("email"))
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}

	roles, err := h.userService.GetRoles(ctx, user.ID)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}
