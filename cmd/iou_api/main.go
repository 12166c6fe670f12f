package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cbfacademy/iou_api/internal/core/ports/repositories"
	"github.com/cbfacademy/iou_api/internal/core/services"
	"github.com/cbfacademy/iou_api/internal/handlers"
	"github.com/cbfacademy/iou_api/internal/middleware"
	"github.com/cbfacademy/iou_api/internal/platform/config"
	"github.com/cbfacademy/iou_api/internal/repositories/database/pgsql"
	"github.com/cbfacademy/iou_api/internal/repositories/memory"
	"github.com/cbfacademy/iou_api/internal/utils"
	"github.com/cbfacademy/iou_api/migrations"
	"github.com/cbfacademy/iou_api/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title IOU API
// @version 1.0
// @description Create, read, update, delete and classify IOU (debt) records.

// @host localhost:8080
// @BasePath /api
func main() {
	// Bootstrap logger until the configured level is known
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	repos, cleanup, err := setupRepositories(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", slog.String("store_driver", cfg.StoreDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store_driver", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories builds the Record Store selected by STORE_DRIVER. The
// returned cleanup releases whatever the store holds open.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory IOU store; data is lost on restart.")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool, logger) }, nil
}
