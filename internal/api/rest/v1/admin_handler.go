package v1

import (
	"fmt"
	"net/http"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"

	"github.com/gin-gonic/gin"
)

// AdminHandler defines the interface for service metadata endpoints
type AdminHandler interface {
	GetInfo(ctx *gin.Context)
	GetCollections(ctx *gin.Context)
}

// adminHandler struct holds the services
type adminHandler struct {
	infoService system.InfoService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(infoService system.InfoService) AdminHandler {
	return &adminHandler{infoService: infoService}
}

// GetInfo returns the service name and API version
func (handler *adminHandler) GetInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ServiceInfoResponse{
		Name:    ServiceName,
		Version: APIVersion,
	})
}

// GetCollections returns every storage collection with its document count
func (handler *adminHandler) GetCollections(ctx *gin.Context) {
	counts, err := handler.infoService.Collections(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("could not inspect collections: %v", err)})
		return
	}

	listResponse := []CollectionResponse{}
	for _, count := range counts {
		listResponse = append(listResponse, CollectionResponse{Name: count.Name, Count: count.Count})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
