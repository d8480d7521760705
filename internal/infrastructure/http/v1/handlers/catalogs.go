package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filterbar/internal/core/apperror"
	"filterbar/internal/registry"
)

// CatalogHandler serves filter catalog metadata.
type CatalogHandler struct {
	*BaseHandler
	registry *registry.Registry
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(reg *registry.Registry) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(),
		registry:    reg,
	}
}

// List returns a summary of all registered list catalogs.
// GET /api/v1/catalogs
func (h *CatalogHandler) List(c *gin.Context) {
	lists := h.registry.List()

	summaries := make([]gin.H, 0, len(lists))
	for _, def := range lists {
		summaries = append(summaries, gin.H{
			"resource":    def.Resource,
			"label":       def.Label,
			"filterCount": len(def.Filters),
		})
	}
	c.JSON(http.StatusOK, summaries)
}

// Get returns the full filter catalog for a list resource.
// GET /api/v1/catalogs/:resource
func (h *CatalogHandler) Get(c *gin.Context) {
	resource := c.Param("resource")
	def, ok := h.registry.Get(resource)
	if !ok {
		h.Error(c, apperror.NewNotFound("list", resource))
		return
	}
	c.JSON(http.StatusOK, def)
}
