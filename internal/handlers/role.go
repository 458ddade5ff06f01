package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/service"
	"go.uber.org/zap"
)

// RoleHandler handles role definition requests.
type RoleHandler struct {
	roleService service.RoleService
	logger      *zap.Logger
}

// NewRoleHandler creates a new RoleHandler instance.
func NewRoleHandler(roleService service.RoleService, logger *zap.Logger) *RoleHandler {
	return &RoleHandler{roleService: roleService, logger: logger}
}

// RoleRequest is the payload for creating a role.
type RoleRequest struct {
	Value       string `json:"value" binding:"required,max=64"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create role
// @Tags roles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RoleRequest true "Role"
// @Success 201 {object} models.Role
// @Failure 409 {object} ErrorResponse
// @Router /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	role, err := h.roleService.Create(c.Request.Context(), req.Value, req.Description)
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

// GetByValue godoc
// @Summary Get role by value
// @Tags roles
// @Security BearerAuth
// @Produce json
// @Param value path string true "Role value"
// @Success 200 {object} models.Role
// @Failure 404 {object} ErrorResponse
// @Router /roles/{value} [get]
func (h *RoleHandler) GetByValue(c *gin.Context) {
	role, err := h.roleService.GetByValue(c.Request.Context(), c.Param("value"))
	if err != nil {
		LogAndRespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, role)
}
