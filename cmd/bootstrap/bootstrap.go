package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-editor/config"
	deliveryHttp "appointment-editor/internal/delivery/http"
	"appointment-editor/internal/delivery/http/handler"
	"appointment-editor/internal/delivery/http/middleware"
	"appointment-editor/internal/domain/entity"
	"appointment-editor/internal/infrastructure/appointmentsapi"
	"appointment-editor/internal/infrastructure/cache"
	"appointment-editor/internal/infrastructure/database"
	"appointment-editor/internal/infrastructure/metrics"
	"appointment-editor/internal/repository"
	"appointment-editor/internal/service"
	"appointment-editor/internal/usecase"
	"appointment-editor/pkg/jwt"
	"appointment-editor/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Apply schema before gorm connects
	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// SetupLogger configures the logrus logger; an unknown level falls back to info
func SetupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

func migrateUp(cfg config.DBConfig) error {
	migrator, err := database.NewMigrator(cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics
	editorMetrics := metrics.NewEditorMetrics(nil)

	// Initialize repositories
	auditLogRepo := repository.NewAuditLogRepository()
	draftRepo := repository.NewDraftRepository(redisClient)
	appointmentRepo := appointmentsapi.NewClient(cfg.AppointmentsAPI, log)

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	appConfig := entity.AppConfig{
		EnableSpecialities:             cfg.Editor.EnableSpecialities,
		IsServiceOnAppointmentEditable: cfg.Editor.IsServiceOnAppointmentEditable,
	}
	editorUsecase := usecase.NewAppointmentEditorUsecase(log, draftRepo, appointmentRepo, auditService, editorMetrics, usecase.EditorSettings{
		AppConfig: appConfig,
		DraftTTL:  cfg.Editor.DraftTTL,
		Location:  cfg.App.Location(),
	}, time.Now)
	editUsecase := usecase.NewAppointmentEditUsecase(log, appointmentRepo, editorMetrics, appConfig, time.Now)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	sessionUsecase := usecase.NewSessionUsecase(log, redisClient)

	// Initialize handlers
	editorHandler := handler.NewEditorHandler(editorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(editUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)
	sessionHandler := handler.NewSessionHandler(sessionUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(log, editorHandler, appointmentHandler, auditLogHandler, sessionHandler, editorMetrics.Handler(), authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
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
