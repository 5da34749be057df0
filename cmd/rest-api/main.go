// cmd/rest-api/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	v1 "github.com/xLang1234/PythonBE/internal/api/rest/v1"
	"github.com/xLang1234/PythonBE/internal/app"
	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/cache"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database connection: ", err)
		}
	}()

	router := setupRouter(deps)

	return startServerWithGracefulShutdown(router, restConfig.Port, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db                    *gorm.DB
	entityService         feed.EntityService
	contentQueryService   content.ContentQueryService
	sentimentQueryService content.SentimentQueryService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	sourceRepo, err := persistence.NewGormSourceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create source repository: %w", err)
	}
	entityRepo, err := persistence.NewGormEntityRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity repository: %w", err)
	}
	rawRepo, err := persistence.NewGormRawContentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create raw content repository: %w", err)
	}
	processedRepo, err := persistence.NewGormProcessedContentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create processed content repository: %w", err)
	}

	cookieManager, err := twitterx.NewCookieManager(
		cfg.Twitter.CookiesDir,
		time.Duration(cfg.Twitter.MinCookieSwitchSeconds)*time.Second,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie manager: %w", err)
	}

	twitterClient, err := twitterx.NewClient(&cfg.Twitter, cookieManager, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create twitter client: %w", err)
	}

	cacheBackend, err := cache.NewCache(&cfg.Cache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	entityService, err := app.NewEntityService(sourceRepo, entityRepo, twitterClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity service: %w", err)
	}

	contentQueryService, err := app.NewContentQueryService(rawRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create content query service: %w", err)
	}

	sentimentQueryService, err := app.NewSentimentQueryService(
		processedRepo,
		cacheBackend,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment query service: %w", err)
	}

	return &appDependencies{
		db:                    db,
		entityService:         entityService,
		contentQueryService:   contentQueryService,
		sentimentQueryService: sentimentQueryService,
	}, nil
}

// setupRouter configures the gin router with middleware and routes
func setupRouter(deps *appDependencies) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.SetupRoutes(r, deps.entityService, deps.contentQueryService, deps.sentimentQueryService)

	return r
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(router *gin.Engine, port string, log logger.Logger) error {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting REST server on port ", port)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Received signal ", sig, ", shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	log.Info("Server stopped gracefully")
	return nil
}
