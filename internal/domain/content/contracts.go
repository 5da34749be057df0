package content

import "context"

// RawContentRepository defines the interface for RawContent-related operations
type RawContentRepository interface {
	// Save stores a post unless one with the same (entity, external id) already exists.
	// It returns the stored or existing row's ID and whether a new row was created.
	Save(ctx context.Context, raw *RawContent) (string, bool, error)
	// List lists RawContent rows with optional filter
	List(ctx context.Context, query *RawContentQuery) ([]*RawContent, error)
	// GetByID retrieves a RawContent row by ID
	GetByID(ctx context.Context, rawContentID string) (*RawContent, error)
	// ListUnprocessed returns processable rows that have no ProcessedContent yet
	ListUnprocessed(ctx context.Context, limit int) ([]*RawContent, error)
}

// ProcessedContentRepository defines the interface for ProcessedContent-related operations
type ProcessedContentRepository interface {
	// Create adds a new ProcessedContent row to the database
	Create(ctx context.Context, processed *ProcessedContent) error
	// List lists ProcessedContent rows with optional filter
	List(ctx context.Context, query *ProcessedContentQuery) ([]*ProcessedContent, error)
	// ListRecentSummaries returns the newest non-empty summaries, newest first
	ListRecentSummaries(ctx context.Context, limit int) ([]string, error)
}

// ContentQueryService defines read operations over collected content
type ContentQueryService interface {
	// List retrieves raw content considering a query filter when set.
	List(ctx context.Context, query *RawContentQuery) ([]*RawContent, error)

	// GetByID retrieves one raw content row by ID.
	GetByID(ctx context.Context, rawContentID string) (*RawContent, error)
}

// SentimentQueryService defines read operations over analysis results
type SentimentQueryService interface {
	// List retrieves processed content considering a query filter when set.
	List(ctx context.Context, query *ProcessedContentQuery) ([]*ProcessedContent, error)

	// RecentSummaries returns the newest market intelligence summaries.
	RecentSummaries(ctx context.Context, limit int) ([]string, error)
}

// AnalysisService defines the processing side of the pipeline
type AnalysisService interface {
	// ProcessUnprocessed analyzes collected content that has no sentiment row yet.
	// It returns the number of rows processed.
	ProcessUnprocessed(ctx context.Context, limit int) (int, error)
}
