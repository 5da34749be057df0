//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

// MockEntityService is a mock implementation of EntityService
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) AddAccount(ctx context.Context, username string) (*feed.TrackedEntity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.TrackedEntity), args.Error(1)
}

func (m *MockEntityService) SeedDefaultAccounts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockEntityService) List(ctx context.Context, query *feed.EntityQuery) ([]*feed.TrackedEntity, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feed.TrackedEntity), args.Error(1)
}

func (m *MockEntityService) Deactivate(ctx context.Context, entityID string) error {
	args := m.Called(ctx, entityID)
	return args.Error(0)
}

// MockContentQueryService is a mock implementation of ContentQueryService
type MockContentQueryService struct {
	mock.Mock
}

func (m *MockContentQueryService) List(ctx context.Context, query *content.RawContentQuery) ([]*content.RawContent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.RawContent), args.Error(1)
}

func (m *MockContentQueryService) GetByID(ctx context.Context, rawContentID string) (*content.RawContent, error) {
	args := m.Called(ctx, rawContentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.RawContent), args.Error(1)
}

// MockSentimentQueryService is a mock implementation of SentimentQueryService
type MockSentimentQueryService struct {
	mock.Mock
}

func (m *MockSentimentQueryService) List(ctx context.Context, query *content.ProcessedContentQuery) ([]*content.ProcessedContent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*content.ProcessedContent), args.Error(1)
}

func (m *MockSentimentQueryService) RecentSummaries(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
