//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xLang1234/PythonBE/internal/domain/content"
)

func testRawContent() *content.RawContent {
	now := time.Now().UTC()
	return &content.RawContent{
		ID:          "d3b07384-d9a0-4c9f-8f2e-123456789abc",
		EntityID:    "a1b2c3d4-0000-4000-8000-123456789abc",
		ExternalID:  "111",
		ContentType: content.ContentTypeTweet,
		Content:     "Bitcoin hits new high",
		Language:    content.LanguageEnglish,
		PublishedAt: now.Add(-time.Hour),
		CollectedAt: now,
		Engagement: content.EngagementMetrics{
			Likes:    40,
			Retweets: 5,
		},
	}
}

func TestContentHandler_List_Success(t *testing.T) {
	mockContentQueryService := new(MockContentQueryService)
	handler := NewContentHandler(mockContentQueryService)

	mockContentQueryService.
		On("List", mock.Anything, mock.MatchedBy(func(query *content.RawContentQuery) bool {
			return query.Language == "en" && query.Limit == 5
		})).
		Return([]*content.RawContent{testRawContent()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content?language=en&limit=5", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bitcoin hits new high")
	mockContentQueryService.AssertExpectations(t)
}

func TestContentHandler_List_SinceFilter(t *testing.T) {
	mockContentQueryService := new(MockContentQueryService)
	handler := NewContentHandler(mockContentQueryService)

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mockContentQueryService.
		On("List", mock.Anything, mock.MatchedBy(func(query *content.RawContentQuery) bool {
			return query.Since.Equal(since)
		})).
		Return([]*content.RawContent{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content?since=2025-06-01T00:00:00Z", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockContentQueryService.AssertExpectations(t)
}

func TestContentHandler_List_ServiceError(t *testing.T) {
	mockContentQueryService := new(MockContentQueryService)
	handler := NewContentHandler(mockContentQueryService)

	mockContentQueryService.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "list query failed")
}

func TestContentHandler_GetByID_Success(t *testing.T) {
	mockContentQueryService := new(MockContentQueryService)
	handler := NewContentHandler(mockContentQueryService)

	raw := testRawContent()
	mockContentQueryService.On("GetByID", mock.Anything, raw.ID).Return(raw, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/"+raw.ID, nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: raw.ID}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":40`)
	mockContentQueryService.AssertExpectations(t)
}

func TestContentHandler_GetByID_NotFound(t *testing.T) {
	mockContentQueryService := new(MockContentQueryService)
	handler := NewContentHandler(mockContentQueryService)

	mockContentQueryService.On("GetByID", mock.Anything, "missing").Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/content/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}
