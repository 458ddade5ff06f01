// Package routes defines HTTP routes for the progress API.
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/handlers"
	"github.com/progresstrack/progress-api/internal/metrics"
	"github.com/progresstrack/progress-api/internal/middleware"
	"github.com/progresstrack/progress-api/internal/models"
	"github.com/progresstrack/progress-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps carries everything Setup mounts.
type Deps struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Roles    *handlers.RoleHandler
	Projects *handlers.ProjectHandler
	Health   *handlers.HealthHandler

	JWT            service.JWTService
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Logger         *zap.Logger
	AllowedOrigins []string
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, d Deps) {
	corsConfig := cors.Config{
		AllowOrigins:  d.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID(), middleware.Logger(d.Logger), middleware.Metrics(d.Metrics))

	// Health check
	router.GET("/health", d.Health.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	requireAuth := middleware.RequireAuth(d.JWT, d.Metrics)
	adminOnly := middleware.RequireRole(models.RoleAdmin, d.Metrics)

	auth := router.Group("/auth")
	{
		auth.POST("/login", d.Auth.Login)
		auth.POST("/registration", d.Auth.Register)
		auth.GET("/token-status", d.Auth.TokenStatus)
	}

	// GET routes are keyed by email, PUT and DELETE by id.
	users := router.Group("/users", requireAuth)
	{
		users.GET("", adminOnly, d.Users.List)
		users.POST("", adminOnly, d.Users.Create)
		users.GET("/:email", d.Users.GetByEmail)
		users.GET("/:email/roles", d.Users.GetRoles)
		users.PUT("/:id", adminOnly, d.Users.Update)
		users.DELETE("/:id", adminOnly, d.Users.Delete)
	}

	roles := router.Group("/roles", requireAuth)
	{
		roles.POST("", adminOnly, d.Roles.Create)
		roles.GET("/:value", d.Roles.GetByValue)
	}

	projects := router.Group("/projects", requireAuth)
	{
		projects.GET("", d.Projects.ListProjects)
		projects.POST("", d.Projects.CreateProject)
		projects.GET("/:projectId", d.Projects.GetProject)
		projects.DELETE("/:projectId", d.Projects.DeleteProject)

		projects.GET("/:projectId/progress", d.Projects.ListProgress)
		projects.POST("/:projectId/progress", d.Projects.CreateProgress)
		projects.DELETE("/:projectId/progress/:progressId", d.Projects.DeleteProgress)

		projects.GET("/:projectId/progress/:progressId/tasks", d.Projects.ListTasks)
		projects.POST("/:projectId/progress/:progressId/tasks", d.Projects.CreateTask)
		projects.DELETE("/:projectId/progress/:progressId/tasks/:taskId", d.Projects.DeleteTask)
	}
}
