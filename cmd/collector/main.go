// cmd/collector/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/app"
	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/openrouter"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
	"github.com/xLang1234/PythonBE/internal/scheduler"
)

// defaultMetricsAddr serves the Prometheus metrics of the daemon,
// overridable through METRICS_ADDR
const defaultMetricsAddr = ":2112"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// API keys may come from a local .env file during development
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/collector.yaml"
	}

	collectorConfig, err := config.InitializeCollectorConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&collectorConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	deps, err := initializeDependencies(collectorConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database connection: ", err)
		}
	}()

	return runPipelineUntilSignal(collectorConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db                *gorm.DB
	entityService     feed.EntityService
	collectionService feed.CollectionService
	analysisService   content.AnalysisService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.CollectorConfig, log logger.Logger) (*appDependencies, error) {
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

	keyManager, err := openrouter.NewKeyManagerFromEnv(
		cfg.OpenRouter.KeyEnvPrefix,
		time.Duration(cfg.OpenRouter.CooldownSeconds)*time.Second,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API key manager: %w", err)
	}

	openRouterClient, err := openrouter.NewClient(&cfg.OpenRouter, keyManager, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create openrouter client: %w", err)
	}

	ensemble := openrouter.NewEnsemble(openRouterClient, cfg.OpenRouter.Models, cfg.OpenRouter.SummaryModel, log)

	entityService, err := app.NewEntityService(sourceRepo, entityRepo, twitterClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create entity service: %w", err)
	}

	collectionService, err := app.NewCollectionService(sourceRepo, entityRepo, rawRepo, twitterClient, &cfg.Twitter, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection service: %w", err)
	}

	analysisService, err := app.NewAnalysisService(rawRepo, processedRepo, entityRepo, ensemble, ensemble, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis service: %w", err)
	}

	return &appDependencies{
		db:                db,
		entityService:     entityService,
		collectionService: collectionService,
		analysisService:   analysisService,
	}, nil
}

// runPipelineUntilSignal seeds the default accounts, starts the scheduler
// and the metrics endpoint, and blocks until SIGINT or SIGTERM.
func runPipelineUntilSignal(cfg *config.CollectorConfig, deps *appDependencies, log logger.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Make sure a fresh database has accounts to collect from
	if added, err := deps.entityService.SeedDefaultAccounts(ctx); err != nil {
		log.Error("Failed to seed default accounts: ", err)
	} else if added > 0 {
		log.Info("Seeded ", added, " default accounts")
	}

	pipeline, err := scheduler.NewPipeline(
		deps.collectionService,
		deps.analysisService,
		time.Duration(cfg.Collection.IntervalMinutes)*time.Minute,
		cfg.Collection.ProcessingLimit,
		log,
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	if err := pipeline.Start(ctx); err != nil {
		return fmt.Errorf("failed to start pipeline: %w", err)
	}

	metricsAddr := os.Getenv("METRICS_ADDR")
	if metricsAddr == "" {
		metricsAddr = defaultMetricsAddr
	}
	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Serving metrics on ", metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Received signal ", sig, ", shutting down")

	cancel()
	pipeline.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = metricsServer.Shutdown(shutdownCtx)

	log.Info("Collector stopped gracefully")
	return nil
}
