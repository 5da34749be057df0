//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockEntityService := new(MockEntityService)
	mockContentQueryService := new(MockContentQueryService)
	mockSentimentQueryService := new(MockSentimentQueryService)

	mockEntityService.On("AddAccount", mock.Anything, mock.Anything).Return(nil, nil)
	mockEntityService.On("SeedDefaultAccounts", mock.Anything).Return(0, nil)
	mockEntityService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockEntityService.On("Deactivate", mock.Anything, mock.Anything).Return(nil)
	mockContentQueryService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockContentQueryService.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil)
	mockSentimentQueryService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockSentimentQueryService.On("RecentSummaries", mock.Anything, mock.Anything).Return(nil, nil)

	r := gin.Default()
	SetupRoutes(r, mockEntityService, mockContentQueryService, mockSentimentQueryService)

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/health"},
		{"POST", "/api/v1/entities"},
		{"POST", "/api/v1/entities/seed"},
		{"GET", "/api/v1/entities"},
		{"DELETE", "/api/v1/entities/abc"},
		{"GET", "/api/v1/content"},
		{"GET", "/api/v1/content/abc"},
		{"GET", "/api/v1/sentiment"},
		{"GET", "/api/v1/sentiment/summaries"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404 from the router);
			// handler-level 404s carry a JSON body instead
			if w.Code == http.StatusNotFound {
				assert.NotEmpty(t, w.Body.String(), "Route should be registered")
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := gin.Default()
	SetupRoutes(r, new(MockEntityService), new(MockContentQueryService), new(MockSentimentQueryService))

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
