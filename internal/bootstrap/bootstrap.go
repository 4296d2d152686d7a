package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/airlinehub/internal/app/controllers"
	appMigrations "github.com/yigit/airlinehub/internal/app/migrations"
	appRepos "github.com/yigit/airlinehub/internal/app/repositories"
	appRoutes "github.com/yigit/airlinehub/internal/app/routes"
	appServices "github.com/yigit/airlinehub/internal/app/services"
	"github.com/yigit/airlinehub/internal/config"
	"github.com/yigit/airlinehub/internal/db"
	appMiddleware "github.com/yigit/airlinehub/internal/middleware"
	"github.com/yigit/airlinehub/internal/pkg/logger"
	"github.com/yigit/airlinehub/internal/pkg/metrics"
	"github.com/yigit/airlinehub/internal/seed"
	"github.com/yigit/airlinehub/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database          *db.Database
	Repos             *appRepos.Repositories
	Metrics           *metrics.Metrics // nil when metrics are disabled
	AirlineService    appServices.AirlineService
	AirportService    appServices.AirportService
	AirlineController *appControllers.AirlineController
	AirportController *appControllers.AirportController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logCfg := logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format)
	logger.Configure(logCfg)

	lgr := logger.Get()
	lgr.Info().
		Str("logLevel", string(logCfg.Level)).
		Str("logFormat", cfg.Logging.Format).
		Str("dbDriver", cfg.Database.Driver).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase establishes the database connection.
func OpenDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.NewDatabase(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// MigrateDatabase applies the embedded migrations of the database's dialect.
func MigrateDatabase(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	lgr.Info().Str("dialect", database.Dialect.Name).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects, migrates and, when enabled, seeds reference data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	database, err := OpenDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := MigrateDatabase(ctx, database, lgr); err != nil {
		_ = database.Close()
		return nil, err
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			// Seed failures are not fatal; the API still serves whatever data exists.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Database: database,
		Logger:   lgr,
	}

	deps.Repos = appRepos.NewRepositories(database)

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.NewMetrics(cfg.Metrics.Namespace)
	}

	deps.AirlineService = appServices.NewAirlineService(database, deps.Repos.AirlineRepository, deps.Metrics)
	deps.AirportService = appServices.NewAirportService(deps.Repos.AirportRepository)

	deps.AirlineController = appControllers.NewAirlineController(deps.AirlineService)
	deps.AirportController = appControllers.NewAirportController(deps.AirportService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.AirlineController, deps.AirportController, deps.Database)
	web.Register(router)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
