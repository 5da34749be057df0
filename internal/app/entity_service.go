package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/config"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// defaultAccounts is the built-in list of crypto accounts to track
var defaultAccounts = []string{
	"coinbase",
	"binance",
	"cz_binance",
	"ethereum",
	"VitalikButerin",
	"SBF_FTX",
	"CryptoHayes",
	"saylor",
	"elonmusk",
	"BTCTN",
	"DocumentingBTC",
	"BitcoinMagazine",
	"APompliano",
	"gladstein",
	"DeFi_Dad",
	"hasufl",
	"ethereumJoseph",
	"TheCryptoLark",
	"CoinDesk",
	"Cointelegraph",
}

// entityService implements the EntityService interface for managing tracked accounts
type entityService struct {
	sourceRepo feed.SourceRepository
	entityRepo feed.EntityRepository
	client     SocialClient
	logger     logger.Logger
}

// NewEntityService creates a new instance of EntityService
func NewEntityService(
	sourceRepo feed.SourceRepository,
	entityRepo feed.EntityRepository,
	client SocialClient,
	logger logger.Logger,
) (feed.EntityService, error) {
	return &entityService{
		sourceRepo: sourceRepo,
		entityRepo: entityRepo,
		client:     client,
		logger:     logger,
	}, nil
}

// AddAccount resolves a platform username and registers it for collection.
// It returns the existing entity when the account is already tracked.
func (s *entityService) AddAccount(ctx context.Context, username string) (*feed.TrackedEntity, error) {
	entity, _, err := s.addAccount(ctx, username)
	return entity, err
}

func (s *entityService) addAccount(ctx context.Context, username string) (*feed.TrackedEntity, bool, error) {
	source, err := s.sourceRepo.GetOrCreateByType(ctx, config.TwitterSourceType, "Twitter", "https://x.com")
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve source: %w", err)
	}

	profile, err := s.client.UserByScreenName(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	existing, err := s.entityRepo.GetByExternalID(ctx, source.ID, profile.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing entity: %w", err)
	}
	if existing != nil {
		s.logger.Info("Entity ", username, " already tracked")
		return existing, false, nil
	}

	now := time.Now().UTC()
	entity := &feed.TrackedEntity{
		ID:             uuid.NewString(),
		SourceID:       source.ID,
		ExternalID:     profile.ID,
		Name:           profile.Name,
		Username:       username,
		Description:    profile.Description,
		FollowersCount: profile.FollowersCount,
		RelevanceScore: 1.0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := entity.Validate(); err != nil {
		return nil, false, err
	}

	if err := s.entityRepo.Create(ctx, entity); err != nil {
		return nil, false, fmt.Errorf("failed to create entity %s: %w", username, err)
	}

	s.logger.Info("Added entity ", username, " for collection")
	return entity, true, nil
}

// SeedDefaultAccounts registers the built-in account list, returning the
// number of newly added accounts. Individual lookup failures are logged
// and skipped so one bad account does not block the rest.
func (s *entityService) SeedDefaultAccounts(ctx context.Context) (int, error) {
	added := 0
	for _, username := range defaultAccounts {
		_, created, err := s.addAccount(ctx, username)
		if err != nil {
			s.logger.Error("Failed to add account ", username, ": ", err)
			continue
		}
		if created {
			added++
		}
	}

	s.logger.Info("Seeded ", added, " default crypto accounts")
	return added, nil
}

// List retrieves tracked entities considering a query filter when set
func (s *entityService) List(ctx context.Context, query *feed.EntityQuery) ([]*feed.TrackedEntity, error) {
	if query == nil {
		query = feed.NewEntityQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return s.entityRepo.List(ctx, query)
}

// Deactivate removes an account from collection without deleting its history
func (s *entityService) Deactivate(ctx context.Context, entityID string) error {
	return s.entityRepo.DeactivateByID(ctx, entityID)
}
