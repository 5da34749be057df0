package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/pkg/strutil"
)

// ContentHandler defines the interface for handling collected content reads
type ContentHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

// contentHandler struct holds the services
type contentHandler struct {
	contentQueryService content.ContentQueryService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentQueryService content.ContentQueryService) ContentHandler {
	return &contentHandler{
		contentQueryService: contentQueryService,
	}
}

// List handles the GET request to list collected posts with optional query parameters
func (handler *contentHandler) List(ctx *gin.Context) {
	query := content.NewRawContentQuery()

	if entityID := ctx.Query("entityId"); len(entityID) > 0 {
		query.EntityID = entityID
	}

	if since := ctx.Query("since"); len(since) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsedTime
		}
	}

	if language := ctx.Query("language"); len(language) > 0 {
		query.Language = language
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	rows, err := handler.contentQueryService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []RawContentResponse{}
	for _, raw := range rows {
		listResponse = append(listResponse, newRawContentResponse(raw))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve one collected post by ID
func (handler *contentHandler) GetByID(ctx *gin.Context) {
	rawContentID := ctx.Param("id")

	raw, err := handler.contentQueryService.GetByID(ctx, rawContentID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("content with id %s not found", rawContentID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newRawContentResponse(raw))
}
