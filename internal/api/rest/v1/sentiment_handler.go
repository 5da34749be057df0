package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/pkg/strutil"
)

// defaultSummariesLimit caps the summaries endpoint when no limit is given
const defaultSummariesLimit = 20

// SentimentHandler defines the interface for handling analysis result reads
type SentimentHandler interface {
	List(ctx *gin.Context)
	Summaries(ctx *gin.Context)
}

// sentimentHandler struct holds the services
type sentimentHandler struct {
	sentimentQueryService content.SentimentQueryService
}

// NewSentimentHandler creates a new SentimentHandler
func NewSentimentHandler(sentimentQueryService content.SentimentQueryService) SentimentHandler {
	return &sentimentHandler{
		sentimentQueryService: sentimentQueryService,
	}
}

// List handles the GET request to list analysis results with optional query parameters
func (handler *sentimentHandler) List(ctx *gin.Context) {
	query := content.NewProcessedContentQuery()

	if since := ctx.Query("since"); len(since) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsedTime
		}
	}

	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}

	if minImpact := ctx.Query("minImpact"); len(minImpact) > 0 {
		query.MinImpact = strutil.ConvertToFloat64(minImpact)
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	results, err := handler.sentimentQueryService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []ProcessedContentResponse{}
	for _, processed := range results {
		listResponse = append(listResponse, newProcessedContentResponse(processed))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Summaries handles the GET request for the newest market intelligence summaries
func (handler *sentimentHandler) Summaries(ctx *gin.Context) {
	limit := defaultSummariesLimit
	if rawLimit := ctx.Query("limit"); len(rawLimit) > 0 {
		if parsed := strutil.ConvertToInt(rawLimit); parsed > 0 {
			limit = parsed
		}
	}

	summaries, err := handler.sentimentQueryService.RecentSummaries(ctx, limit)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("summaries query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if summaries == nil {
		summaries = []string{}
	}
	ctx.JSON(http.StatusOK, SummariesResponse{Summaries: summaries})
}
