package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/progresstrack/progress-api/internal/database"
	"github.com/progresstrack/progress-api/internal/handlers"
	"github.com/progresstrack/progress-api/internal/metrics"
	"github.com/progresstrack/progress-api/internal/repository"
	"github.com/progresstrack/progress-api/internal/routes"
	"github.com/progresstrack/progress-api/internal/service"
	rediscache "github.com/progresstrack/progress-api/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		db, err := database.Connect(cfg.DatabaseURL, debug)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = database.Close(db) }()
		logger.Info("database connected", zap.String("type", string(database.DetectType(cfg.DatabaseURL))))

		if !skipMigrate {
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		checks := map[string]handlers.Pinger{"database": handlers.PingFunc(sqlDB.PingContext)}

		// The users cache is optional: without Redis every listing hits the database.
		var cache service.Cache
		redisClient, err := rediscache.NewClient(cmd.Context(), rediscache.Options{
			Addr:       cfg.RedisAddr(),
			Password:   cfg.RedisPassword,
			DisableTLS: cfg.IsDevelopment(),
		})
		if err != nil {
			logger.Warn("redis unavailable, users cache disabled", zap.Error(err))
		} else {
			defer func() { _ = redisClient.Close() }()
			redisCache := rediscache.NewCache(redisClient, "progress:")
			cache = redisCache
			checks["redis"] = redisCache
		}

		jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
		if err != nil {
			return fmt.Errorf("failed to create JWT service: %w", err)
		}
		hasher := service.NewPasswordHasher(cfg.BcryptCost)

		userRepo := repository.NewUserRepository(db, cfg.StoreTimeout)
		roleRepo := repository.NewRoleRepository(db, cfg.StoreTimeout)
		projectRepo := repository.NewProjectRepository(db, cfg.StoreTimeout)
		progressRepo := repository.NewProgressRepository(db, cfg.StoreTimeout)
		taskRepo := repository.NewTaskRepository(db, cfg.StoreTimeout)

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(registry)

		if !cfg.IsDevelopment() {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.New()
		router.Use(gin.Recovery())

		routes.Setup(router, routes.Deps{
			Auth: handlers.NewAuthHandler(
				service.NewAuthService(userRepo, jwtService, hasher, cfg.DefaultRole), m, logger),
			Users: handlers.NewUserHandler(
				service.NewUserService(userRepo, hasher, cache, cfg.CacheTTL, cfg.DefaultRole), logger),
			Roles: handlers.NewRoleHandler(service.NewRoleService(roleRepo), logger),
			Projects: handlers.NewProjectHandler(
				service.NewProjectService(projectRepo),
				service.NewProgressService(projectRepo, progressRepo),
				service.NewTaskService(progressRepo, taskRepo),
				logger,
			),
			Health:         handlers.NewHealthHandler(checks, 2*time.Second),
			JWT:            jwtService,
			Metrics:        m,
			Gatherer:       registry,
			Logger:         logger,
			AllowedOrigins: cfg.AllowedOrigins,
		})

		srv := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting progress API", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", zap.String("signal", sig.String()))

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run migrations on startup")
}
