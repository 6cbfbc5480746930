package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/captain-burah/estateflow-pro/internal/config"
	"github.com/captain-burah/estateflow-pro/internal/handler"
	"github.com/captain-burah/estateflow-pro/internal/infrastructure/cache"
	"github.com/captain-burah/estateflow-pro/internal/infrastructure/database"
	"github.com/captain-burah/estateflow-pro/internal/logger"
	"github.com/captain-burah/estateflow-pro/internal/metrics"
	"github.com/captain-burah/estateflow-pro/internal/middleware"
	"github.com/captain-burah/estateflow-pro/internal/portalapi"
	"github.com/captain-burah/estateflow-pro/internal/repository"
	"github.com/captain-burah/estateflow-pro/internal/service"
	"github.com/captain-burah/estateflow-pro/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Connect to redis when configured. The location cache is optional, so a
	// failure here only disables caching rather than aborting startup.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewRedis(context.Background(), cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logger.Warn("Redis unavailable, location caching disabled",
				slog.String("error", err.Error()))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	propertyRepo := repository.NewPostgresPropertyRepository(pool)
	agentRepo := repository.NewPostgresAgentRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	locationClient := portalapi.NewClientWithTimeout(cfg.PortalAPIBaseURL, cfg.PortalAPITimeout)

	propertyService := service.NewPropertyService(propertyRepo, v)
	workflowService := service.NewWorkflowService(propertyRepo, v)
	portalService := service.NewPortalService(propertyRepo, v)
	agentService := service.NewAgentService(agentRepo, propertyRepo)
	dashboardService := service.NewDashboardService(propertyRepo, agentRepo)
	locationService := service.NewLocationService(locationClient, redisClient, cfg.LocationCacheTTL)

	// Initialize handlers
	propertyHandler := handler.NewPropertyHandler(propertyService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	portalHandler := handler.NewPortalHandler(portalService, locationService)
	agentHandler := handler.NewAgentHandler(agentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Identity(cfg.AuthSecret))
	{
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.List)
			properties.POST("", propertyHandler.Create)
			properties.GET("/search", propertyHandler.Search)
			properties.GET("/approvals/pending", propertyHandler.PendingApprovals)
			properties.GET("/portal-locations", portalHandler.SearchLocations)
			properties.POST("/bulk-enhance", portalHandler.BulkEnhance)

			properties.GET("/:id", propertyHandler.Get)
			properties.PATCH("/:id", propertyHandler.Update)
			properties.DELETE("/:id", propertyHandler.Delete)

			properties.POST("/:id/draft-changes", workflowHandler.SaveDraft)
			properties.POST("/:id/submit-approval", workflowHandler.SubmitForApproval)
			properties.PATCH("/:id/approve", workflowHandler.Approve)
			properties.PATCH("/:id/reject", workflowHandler.Reject)

			properties.POST("/:id/enhance", portalHandler.Enhance)
			properties.GET("/:id/readiness", portalHandler.Readiness)
			properties.POST("/:id/publish", portalHandler.Publish)
		}

		agents := v1.Group("/agents")
		{
			agents.GET("", agentHandler.List)
			agents.POST("", agentHandler.Create)
			agents.GET("/:id", agentHandler.Get)
			agents.PATCH("/:id", agentHandler.Update)
			agents.GET("/:id/performance", agentHandler.Performance)
			agents.GET("/:id/properties", agentHandler.Properties)
		}

		v1.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
