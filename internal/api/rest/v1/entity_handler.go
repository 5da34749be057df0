package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/strutil"
)

// EntityHandler defines the interface for handling tracked account operations
type EntityHandler interface {
	AddAccount(ctx *gin.Context)
	SeedDefaults(ctx *gin.Context)
	List(ctx *gin.Context)
	Deactivate(ctx *gin.Context)
}

// entityHandler struct holds the services
type entityHandler struct {
	entityService feed.EntityService
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(entityService feed.EntityService) EntityHandler {
	return &entityHandler{
		entityService: entityService,
	}
}

// AddAccount handles the POST request to register an account for collection
func (handler *entityHandler) AddAccount(ctx *gin.Context) {
	var request AddAccountRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid account data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	entity, err := handler.entityService.AddAccount(ctx, request.Username)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error adding account: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newEntityResponse(entity))
}

// SeedDefaults handles the POST request to register the built-in account list
func (handler *entityHandler) SeedDefaults(ctx *gin.Context) {
	added, err := handler.entityService.SeedDefaultAccounts(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error seeding accounts: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, SeedResponse{Added: added})
}

// List handles the GET request to list tracked accounts with optional query parameters
func (handler *entityHandler) List(ctx *gin.Context) {
	query := feed.NewEntityQuery()

	if username := ctx.Query("username"); len(username) > 0 {
		query.Username = username
	}

	if activeOnly := ctx.Query("activeOnly"); activeOnly == "true" {
		query.ActiveOnly = true
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

	entities, err := handler.entityService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []EntityResponse{}
	for _, entity := range entities {
		listResponse = append(listResponse, newEntityResponse(entity))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Deactivate handles the DELETE request to remove an account from collection
func (handler *entityHandler) Deactivate(ctx *gin.Context) {
	entityID := ctx.Param("id")

	if err := handler.entityService.Deactivate(ctx, entityID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deactivating entity with id %s", entityID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deactivated entity with id %s", entityID)
	ctx.JSON(http.StatusOK, infoResponse)
}
