package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/classroom/internal/app/controllers"
	appMigrations "github.com/yigit/classroom/internal/app/migrations"
	appRepos "github.com/yigit/classroom/internal/app/repositories"
	appRoutes "github.com/yigit/classroom/internal/app/routes"
	appServices "github.com/yigit/classroom/internal/app/services"
	"github.com/yigit/classroom/internal/config"
	"github.com/yigit/classroom/internal/db"
	appMiddleware "github.com/yigit/classroom/internal/middleware"
	"github.com/yigit/classroom/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB          *db.PostgresDB
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies the embedded schema.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{DB: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos, database)

	deps.Controllers = appRoutes.Controllers{
		User:       appControllers.NewUserController(deps.Services.UserService),
		Profile:    appControllers.NewProfileController(deps.Services.ProfileService),
		Teacher:    appControllers.NewTeacherController(deps.Services.TeacherService),
		Course:     appControllers.NewCourseController(deps.Services.CourseService),
		Student:    appControllers.NewStudentController(deps.Services.StudentService),
		Enrollment: appControllers.NewEnrollmentController(deps.Services.EnrollmentService),
	}
	return deps
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

	appMiddleware.RegisterJSONTagNames()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	deps.Controllers.System = appControllers.NewSystemController(deps.DB, router.Routes)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
