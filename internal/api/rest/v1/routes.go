package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	entityService feed.EntityService,
	contentQueryService content.ContentQueryService,
	sentimentQueryService content.SentimentQueryService) {

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group(BasePath)

	// Tracked account routes
	entityHandler := NewEntityHandler(entityService)
	v1.POST("/entities", entityHandler.AddAccount)
	v1.POST("/entities/seed", entityHandler.SeedDefaults)
	v1.GET("/entities", entityHandler.List)
	v1.DELETE("/entities/:id", entityHandler.Deactivate)

	// Collected content routes
	contentHandler := NewContentHandler(contentQueryService)
	v1.GET("/content", contentHandler.List)
	v1.GET("/content/:id", contentHandler.GetByID)

	// Analysis result routes
	sentimentHandler := NewSentimentHandler(sentimentQueryService)
	v1.GET("/sentiment", sentimentHandler.List)
	v1.GET("/sentiment/summaries", sentimentHandler.Summaries)
}
