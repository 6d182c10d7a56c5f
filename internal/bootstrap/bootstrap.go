package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rajat/coursepulse/internal/app/controllers"
	appMigrations "github.com/rajat/coursepulse/internal/app/migrations"
	appRepos "github.com/rajat/coursepulse/internal/app/repositories"
	appRoutes "github.com/rajat/coursepulse/internal/app/routes"
	appServices "github.com/rajat/coursepulse/internal/app/services"
	"github.com/rajat/coursepulse/internal/config"
	"github.com/rajat/coursepulse/internal/db"
	appMiddleware "github.com/rajat/coursepulse/internal/middleware"
	"github.com/rajat/coursepulse/internal/pkg/logger"
	"github.com/rajat/coursepulse/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService       appServices.CourseService
	FeedbackService     appServices.FeedbackService
	AnalyticsService    appServices.AnalyticsService
	CourseController    *appControllers.CourseController
	FeedbackController  *appControllers.FeedbackController
	AnalyticsController *appControllers.AnalyticsController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore builds the repository layer for the configured driver. The pool
// is nil for the in-memory driver.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*appRepos.Repositories, *pgxpool.Pool, error) {
	var repos *appRepos.Repositories
	var dbPool *pgxpool.Pool

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Info().Msg("Using in-memory store")
		repos = appRepos.NewMemoryRepositories()

	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		dbPool = database.Pool
		lgr.Info().Msg("Database connection successfully established.")

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(dbPool)

		migrationsDir := "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
			dbPool.Close()
			return nil, nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
		}

		if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		repos = appRepos.NewPostgresRepositories(dbPool)

	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if cfg.Server.SeedDemoData {
		if err := seed.EnsureDemoData(context.Background(), repos, lgr); err != nil {
			// Demo data is a convenience; startup continues without it.
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return repos, dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Repos: repos}

	// Initialize services
	deps.CourseService = appServices.NewCourseService(repos.CourseRepository, repos.FeedbackRepository)
	deps.FeedbackService = appServices.NewFeedbackService(repos.FeedbackRepository, repos.CourseRepository)
	deps.AnalyticsService = appServices.NewAnalyticsService(repos.CourseRepository, repos.FeedbackRepository)

	// Initialize controllers
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS())

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.FeedbackController,
		deps.AnalyticsController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
