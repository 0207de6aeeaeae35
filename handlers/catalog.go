package handlers

import (
	"net/http"

	"solmar/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the static service catalog.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(cat catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

// GetAvailableServices handles GET /api/catalog/services.
func (h *CatalogHandler) GetAvailableServices(c *gin.Context) {
	services, err := h.Catalog.GetAvailableServices()
	if err != nil {
		h.Logger.Error("GetAvailableServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	id := c.Param("id")

	service, err := h.Catalog.GetServiceByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "service not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, service)
}
