//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

func testEntity() *feed.TrackedEntity {
	now := time.Now().UTC()
	return &feed.TrackedEntity{
		ID:             "d3b07384-d9a0-4c9f-8f2e-123456789abc",
		SourceID:       "a1b2c3d4-0000-4000-8000-123456789abc",
		ExternalID:     "534023",
		Name:           "CoinDesk",
		Username:       "coindesk",
		Description:    "crypto news",
		FollowersCount: 3000000,
		RelevanceScore: 1.0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestEntityHandler_AddAccount_Success(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.
		On("AddAccount", mock.Anything, "coindesk").
		Return(testEntity(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/entities", bytes.NewBufferString(`{"username": "coindesk"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddAccount(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "coindesk")
	mockEntityService.AssertExpectations(t)
}

func TestEntityHandler_AddAccount_MissingUsername(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/entities", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockEntityService.AssertNotCalled(t, "AddAccount")
}

func TestEntityHandler_AddAccount_ServiceError(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.
		On("AddAccount", mock.Anything, "ghost").
		Return(nil, errors.New("user ghost not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/entities", bytes.NewBufferString(`{"username": "ghost"}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.AddAccount(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error adding account")
}

func TestEntityHandler_SeedDefaults_Success(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.On("SeedDefaultAccounts", mock.Anything).Return(12, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/entities/seed", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.SeedDefaults(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"added":12`)
	mockEntityService.AssertExpectations(t)
}

func TestEntityHandler_List_Success(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.
		On("List", mock.Anything, mock.MatchedBy(func(query *feed.EntityQuery) bool {
			return query.ActiveOnly && query.Limit == 10
		})).
		Return([]*feed.TrackedEntity{testEntity()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/entities?activeOnly=true&limit=10", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "coindesk")
	mockEntityService.AssertExpectations(t)
}

func TestEntityHandler_List_Empty(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.On("List", mock.Anything, mock.Anything).Return([]*feed.TrackedEntity{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/entities", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestEntityHandler_Deactivate(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.On("Deactivate", mock.Anything, "abc-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/entities/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}

	handler.Deactivate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deactivated entity")
	mockEntityService.AssertExpectations(t)
}

func TestEntityHandler_Deactivate_NotFound(t *testing.T) {
	mockEntityService := new(MockEntityService)
	handler := NewEntityHandler(mockEntityService)

	mockEntityService.On("Deactivate", mock.Anything, "missing").Return(errors.New("no entity"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/entities/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Deactivate(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
