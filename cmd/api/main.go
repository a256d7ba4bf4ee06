package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/workoflow/hrms-api/internal/config"
	"github.com/workoflow/hrms-api/internal/database"
	"github.com/workoflow/hrms-api/internal/handlers"
	"github.com/workoflow/hrms-api/internal/middleware"
	"github.com/workoflow/hrms-api/internal/services"
	"github.com/workoflow/hrms-api/pkg/utils"
)

func main() {
	// Load .env if present; real environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch cfg.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	err = utils.InitLogger(&utils.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting HRMS API", utils.LogFields{
		"version":     "1.0.0",
		"environment": cfg.App.Env,
		"port":        cfg.App.Port,
	})

	if cfg.Security.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set", nil)
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	logger.Info("Database migrations completed successfully", nil)

	serviceContainer := initializeServices(cfg, db)
	handlerContainer := initializeHandlers(db, serviceContainer)
	middlewareContainer := initializeMiddleware(serviceContainer)

	router := setupRouter(cfg, handlerContainer, middlewareContainer)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info("Server starting", utils.LogFields{
			"addr": srv.Addr,
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", err)
	}

	// Drain in-flight audit appends before the process exits.
	serviceContainer.AuditService.Wait()

	logger.Info("Server stopped gracefully")
}

// ServiceContainer holds all initialized services
type ServiceContainer struct {
	JWTService       *services.JWTService
	AuditService     *services.AuditService
	AuthService      *services.AuthService
	DirectoryService *services.DirectoryService
}

// HandlerContainer holds all initialized handlers
type HandlerContainer struct {
	AuthHandler       *handlers.AuthHandler
	EmployeeHandler   *handlers.EmployeeHandler
	TeamHandler       *handlers.TeamHandler
	AssignmentHandler *handlers.AssignmentHandler
	LogHandler        *handlers.LogHandler
	HealthHandler     *handlers.HealthHandler
}

// MiddlewareContainer holds all initialized middleware
type MiddlewareContainer struct {
	AuthMiddleware *middleware.AuthMiddleware
}

func initializeServices(cfg *config.Config, db database.Database) *ServiceContainer {
	jwtService := services.NewJWTService(cfg.Security.JWTSecret, cfg.Security.JWTExpiry)
	auditService := services.NewAuditService(db, utils.Logrus())
	authService := services.NewAuthService(db, jwtService, auditService, cfg.Security.BcryptCost)
	directoryService := services.NewDirectoryService(db, auditService)

	return &ServiceContainer{
		JWTService:       jwtService,
		AuditService:     auditService,
		AuthService:      authService,
		DirectoryService: directoryService,
	}
}

func initializeHandlers(db database.Database, sc *ServiceContainer) *HandlerContainer {
	return &HandlerContainer{
		AuthHandler:       handlers.NewAuthHandler(sc.AuthService),
		EmployeeHandler:   handlers.NewEmployeeHandler(sc.DirectoryService),
		TeamHandler:       handlers.NewTeamHandler(sc.DirectoryService),
		AssignmentHandler: handlers.NewAssignmentHandler(sc.DirectoryService),
		LogHandler:        handlers.NewLogHandler(sc.AuditService),
		HealthHandler:     handlers.NewHealthHandler(db),
	}
}

func initializeMiddleware(sc *ServiceContainer) *MiddlewareContainer {
	return &MiddlewareContainer{
		AuthMiddleware: middleware.NewAuthMiddleware(sc.JWTService),
	}
}

func setupRouter(cfg *config.Config, h *HandlerContainer, m *MiddlewareContainer) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(utils.Logrus()))
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg, utils.Logrus()))

	// Health endpoints (no auth required)
	router.GET("/health", h.HealthHandler.Health)
	router.GET("/ready", h.HealthHandler.Readiness)
	router.GET("/live", h.HealthHandler.Liveness)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        cfg.App.Name,
			"version":     "1.0.0",
			"environment": cfg.App.Env,
			"status":      "running",
			"timestamp":   time.Now().UTC(),
		})
	})

	api := router.Group("/api")

	// Public authentication routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/logout", m.AuthMiddleware.AuthRequired(), h.AuthHandler.Logout)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(m.AuthMiddleware.AuthRequired())
	{

		employees := protected.Group("/employees")
		{
			employees.GET("", h.EmployeeHandler.List)
			employees.POST("", h.EmployeeHandler.Create)
			employees.GET("/:id", h.EmployeeHandler.Get)
			employees.PUT("/:id", h.EmployeeHandler.Update)
			employees.DELETE("/:id", h.EmployeeHandler.Delete)
		}

		teams := protected.Group("/teams")
		{
			teams.GET("", h.TeamHandler.List)
			teams.POST("", h.TeamHandler.Create)
			teams.GET("/:id", h.TeamHandler.Get)
			teams.PUT("/:id", h.TeamHandler.Update)
			teams.DELETE("/:id", h.TeamHandler.Delete)
		}

		assignments := protected.Group("/assignments")
		{
			assignments.GET("", h.AssignmentHandler.List)
			assignments.POST("", h.AssignmentHandler.Assign)
			assignments.DELETE("", h.AssignmentHandler.Unassign)
		}

		protected.GET("/logs", h.LogHandler.List)
	}

	return router
}
