package feed

import "context"

// SourceRepository defines the interface for Source-related operations
type SourceRepository interface {
	// GetOrCreateByType returns the source of the given type, creating it when absent
	GetOrCreateByType(ctx context.Context, sourceType, name, apiEndpoint string) (*Source, error)
	// GetByType retrieves the active source of the given type, nil when none exists
	GetByType(ctx context.Context, sourceType string) (*Source, error)
}

// EntityRepository defines the interface for TrackedEntity-related operations
type EntityRepository interface {
	// Create adds a new TrackedEntity to the database
	Create(ctx context.Context, entity *TrackedEntity) error
	// List lists TrackedEntities in the database with optional filter
	List(ctx context.Context, query *EntityQuery) ([]*TrackedEntity, error)
	// GetByID retrieves a TrackedEntity from the database by ID
	GetByID(ctx context.Context, entityID string) (*TrackedEntity, error)
	// GetByExternalID retrieves a TrackedEntity by source and platform user ID, nil when absent
	GetByExternalID(ctx context.Context, sourceID, externalID string) (*TrackedEntity, error)
	// ListActiveBySource lists all active entities attached to a source
	ListActiveBySource(ctx context.Context, sourceID string) ([]*TrackedEntity, error)
	// DeactivateByID marks a TrackedEntity inactive by ID
	DeactivateByID(ctx context.Context, entityID string) error
}

// EntityService defines methods for managing the set of tracked accounts
type EntityService interface {
	// AddAccount resolves a platform username and registers it for collection.
	// It returns the existing entity when the account is already tracked.
	AddAccount(ctx context.Context, username string) (*TrackedEntity, error)

	// SeedDefaultAccounts registers the built-in account list,
	// returning the number of newly added accounts.
	SeedDefaultAccounts(ctx context.Context) (int, error)

	// List retrieves tracked entities considering a query filter when set.
	List(ctx context.Context, query *EntityQuery) ([]*TrackedEntity, error)

	// Deactivate removes an account from collection without deleting its history.
	Deactivate(ctx context.Context, entityID string) error
}

// CollectionService defines methods for running a collection pass
type CollectionService interface {
	// CollectAll fetches recent posts for every active tracked entity.
	// It returns the total number of newly stored posts.
	CollectAll(ctx context.Context) (int, error)
}
