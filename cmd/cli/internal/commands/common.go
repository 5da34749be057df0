package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/xLang1234/PythonBE/internal/app"
	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/infrastructure/cache"
	"github.com/xLang1234/PythonBE/internal/infrastructure/openrouter"
	"github.com/xLang1234/PythonBE/internal/infrastructure/persistence"
	"github.com/xLang1234/PythonBE/internal/infrastructure/twitterx"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// cliCacheTTL bounds how long sentiment summaries are reused within one invocation
const cliCacheTTL = time.Minute

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// buildAnalyzer wires just the OpenRouter ensemble, for commands that
// analyze ad-hoc text without touching the database.
func buildAnalyzer(log logger.Logger) (*openrouter.Ensemble, error) {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/collector.yaml"
	}

	cfg, err := config.InitializeCollectorConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
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

	return openrouter.NewEnsemble(openRouterClient, cfg.OpenRouter.Models, cfg.OpenRouter.SummaryModel, log), nil
}

// cliServices bundles the application services a CLI command can reach for
type cliServices struct {
	db                    *gorm.DB
	entityService         feed.EntityService
	collectionService     feed.CollectionService
	analysisService       content.AnalysisService
	sentimentQueryService content.SentimentQueryService
}

// Close releases the database connection held by the bundle
func (s *cliServices) Close() error {
	return persistence.CloseDB(s.db)
}

// buildServices loads the collector configuration and wires the full service
// stack. Commands call this lazily so that --help never touches the database.
func buildServices(log logger.Logger) (*cliServices, error) {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/collector.yaml"
	}

	cfg, err := config.InitializeCollectorConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

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

	sentimentQueryService, err := app.NewSentimentQueryService(processedRepo, cache.NewMemoryCache(), cliCacheTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment query service: %w", err)
	}

	return &cliServices{
		db:                    db,
		entityService:         entityService,
		collectionService:     collectionService,
		analysisService:       analysisService,
		sentimentQueryService: sentimentQueryService,
	}, nil
}
