package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingcare-service/config"
	deliveryHttp "bookingcare-service/internal/delivery/http"
	"bookingcare-service/internal/delivery/http/handler"
	"bookingcare-service/internal/delivery/http/middleware"
	"bookingcare-service/internal/infrastructure/cache"
	"bookingcare-service/internal/infrastructure/database"
	"bookingcare-service/internal/repository"
	"bookingcare-service/internal/service"
	"bookingcare-service/internal/usecase"
	"bookingcare-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const capacitySyncTimeout = 2 * time.Minute

// App holds all dependencies for the application
type App struct {
	Config          *config.Config
	DB              *gorm.DB
	RedisClient     *redis.Client
	Server          *http.Server
	Log             *logrus.Logger
	capacityService *service.SlotCapacityService
	rateLimiter     *middleware.RateLimitMiddleware
}

// New creates a new App instance with all dependencies initialized
func New(configPath string) (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	app.Log = setupLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	if cfg.DB.AutoMigrate {
		if err := database.MigrateUp(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	// Initialize Redis. Capacity counters are optional, so a failed connection only disables them.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	switch {
	case err != nil:
		app.Log.Warnf("Failed to connect to Redis, slot capacity sync disabled: %+v", err)
	case redisClient == nil:
		app.Log.Info("Redis disabled, slot capacity sync off")
	default:
		app.RedisClient = redisClient
		app.Log.Infof("Redis connected at %s", cfg.Redis.Addr())
	}

	// Initialize all layers
	server, err := app.initializeServer()
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() (*http.Server, error) {
	cfg := app.Config
	log := app.Log

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	allcodeRepo := repository.NewAllcodeRepository()
	markdownRepo := repository.NewMarkdownRepository()
	doctorInfoRepo := repository.NewDoctorInfoRepository()
	scheduleRepo := repository.NewScheduleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	var capacitySyncer usecase.SlotCapacitySyncer
	if app.RedisClient != nil {
		app.capacityService = service.NewSlotCapacityService(app.DB, app.RedisClient, log, scheduleRepo)
		capacitySyncer = app.capacityService
	}

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(app.DB, log, customValidator, userRepo, markdownRepo, doctorInfoRepo, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(app.DB, log, customValidator, scheduleRepo, capacitySyncer, cfg.Schedule.MaxNumber)
	allcodeUsecase, err := usecase.NewAllcodeUsecase(app.DB, log, allcodeRepo, cfg.Cache.AllcodeSize)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase)
	allcodeHandler := handler.NewAllcodeHandler(allcodeUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	if cfg.RateLimit.RPS > 0 {
		app.rateLimiter = middleware.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, scheduleHandler, allcodeHandler, corsMiddleware, app.rateLimiter, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.capacityService != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), capacitySyncTimeout)
			defer cancel()
			if err := app.capacityService.SyncOnStartup(ctx); err != nil {
				app.Log.Warnf("Failed to sync slot capacity on startup: %+v", err)
			}
		}()
	}

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.rateLimiter != nil {
		app.rateLimiter.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
