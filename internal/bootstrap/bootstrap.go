package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaanyld/tutorhub/internal/app/controllers"
	appRepos "github.com/kaanyld/tutorhub/internal/app/repositories"
	appRoutes "github.com/kaanyld/tutorhub/internal/app/routes"
	appServices "github.com/kaanyld/tutorhub/internal/app/services"
	"github.com/kaanyld/tutorhub/internal/config"
	appMiddleware "github.com/kaanyld/tutorhub/internal/middleware"
	pkgAuth "github.com/kaanyld/tutorhub/internal/pkg/auth"
	"github.com/kaanyld/tutorhub/internal/pkg/logger"
	"github.com/kaanyld/tutorhub/internal/seed"
	"github.com/kaanyld/tutorhub/internal/storage"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      appServices.AuthService
	ParentService    appServices.ParentService
	TutorService     appServices.TutorService
	AdminService     appServices.AdminService
	AuthController   *appControllers.AuthController
	ParentController *appControllers.ParentController
	TutorController  *appControllers.TutorController
	AdminController  *appControllers.AdminController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Medium           storage.Medium
	Logger           zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the file-backed storage medium and seeds default data.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Medium, error) {
	lgr.Info().Str("dir", cfg.Storage.Dir).Msg("Opening storage")
	medium, err := storage.NewFileMedium(cfg.Storage.Dir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open storage")
		return nil, fmt.Errorf("failed to open storage at %s: %w", cfg.Storage.Dir, err)
	}

	if err := seed.CreateDefaultData(cfg, medium, lgr); err != nil {
		// Log the error but don't fail the startup over seed data
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return medium, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, medium storage.Medium, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Medium: medium}

	deps.Repos = appRepos.NewRepositories(medium, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository, deps.JWTService, lgr)
	deps.ParentService = appServices.NewParentService(medium, deps.Repos, lgr)
	deps.TutorService = appServices.NewTutorService(deps.Repos, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ParentController = appControllers.NewParentController(deps.ParentService)
	deps.TutorController = appControllers.NewTutorController(deps.TutorService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ParentController,
		deps.TutorController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
