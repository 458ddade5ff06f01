package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/metrics"
	"github.com/progresstrack/progress-api/internal/middleware"
	"github.com/progresstrack/progress-api/internal/service"
	"go.uber.org/zap"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, m *metrics.Metrics, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
		logger:      logger,
	}
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			h.metrics.AuthEvent(metrics.EventLoginFailure)
			h.logger.Info("login failed", zap.String("request_id", middleware.GetRequestID(c)))
		}
		LogAndRespondError(c, h.logger, err)
		return
	}

	h.metrics.AuthEvent(metrics.EventLoginSuccess)
	c.JSON(http.StatusOK, service.TokenResponse{Token: token})
}

// Register godoc
// @Summary Self-registration
// @Description Create an account with the default role and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "New account credentials"
// @Success 201 {object} service.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/registration [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.AuthEvent(metrics.EventRegisterError)
		LogAndRespondError(c, h.logger, err)
		return
	}

	h.metrics.AuthEvent(metrics.EventRegistered)
	c.JSON(http.StatusCreated, service.TokenResponse{Token: token})
}

// TokenStatusResponse represents the token status response.
type TokenStatusResponse struct {
	Valid      bool     `json:"valid"`
	TTLSeconds int64    `json:"ttl_seconds"`
	ID         int64    `json:"id,omitempty"`
	Email      string   `json:"email,omitempty"`
	Roles      []string `json:"roles,omitempty"`
}

// TokenStatus godoc
// @Summary Check token status
// @Description Check if the bearer token is valid and return remaining TTL with its claims
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} TokenStatusResponse
// @Failure 401 {object} TokenStatusResponse
// @Router /auth/token-status [get]
func (h *AuthHandler) TokenStatus(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, TokenStatusResponse{Valid: false})
		return
	}

	ttl, claims, err := h.authService.ValidateToken(token)
	if err != nil || ttl <= 0 {
		h.metrics.AuthEvent(metrics.EventTokenRejected)
		c.JSON(http.StatusUnauthorized, TokenStatusResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, TokenStatusResponse{
		Valid:      true,
		TTLSeconds: ttl,
		ID:         claims.ID,
		Email:      claims.Email,
		Roles:      claims.Roles,
	})
}
