package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"filterbar/internal/core/apperror"
	"filterbar/internal/domain/filters"
	"filterbar/internal/domain/views"
	"filterbar/internal/i18n"
	"filterbar/internal/infrastructure/http/v1/dto"
	"filterbar/internal/registry"
)

// ViewHandler serves saved filter views.
type ViewHandler struct {
	*BaseHandler
	service  *views.Service
	registry *registry.Registry
	bundle   *i18n.Bundle
}

// NewViewHandler creates a new view handler.
func NewViewHandler(service *views.Service, reg *registry.Registry, bundle *i18n.Bundle) *ViewHandler {
	return &ViewHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
		registry:    reg,
		bundle:      bundle,
	}
}

// List returns the authenticated user's views, optionally scoped to one
// resource.
// GET /api/v1/views?resource=orders
func (h *ViewHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), c.Query("resource"))
	if err != nil {
		h.Error(c, err)
		return
	}

	out := make([]dto.ViewResponse, 0, len(result))
	for _, view := range result {
		out = append(out, h.toResponse(c, view))
	}
	c.JSON(http.StatusOK, out)
}

// Create saves a new view.
// POST /api/v1/views
func (h *ViewHandler) Create(c *gin.Context) {
	var req dto.CreateViewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.service.Create(c.Request.Context(), req.Resource, req.Name, dto.ToSet(req.Filters))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c, view))
}

// Get returns one view.
// GET /api/v1/views/:id
func (h *ViewHandler) Get(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, view))
}

// Rename changes a view's display name.
// PATCH /api/v1/views/:id
func (h *ViewHandler) Rename(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}

	var req dto.RenameViewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.service.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, view))
}

// Delete removes a view.
// DELETE /api/v1/views/:id
func (h *ViewHandler) Delete(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Share mints a share token for a view.
// POST /api/v1/views/:id/share
func (h *ViewHandler) Share(c *gin.Context) {
	id, ok := h.viewID(c)
	if !ok {
		return
	}

	token, expiresAt, err := h.service.Share(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ShareResponse{Token: token, ExpiresAt: expiresAt})
}

// Open resolves a share token to its view. No authentication required.
// GET /api/v1/shared/:token
func (h *ViewHandler) Open(c *gin.Context) {
	view, err := h.service.Open(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c, view))
}

func (h *ViewHandler) viewID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid view id").WithDetail("id", c.Param("id")))
		return uuid.UUID{}, false
	}
	return id, true
}

// toResponse resolves the view's filters for the request locale. A view
// whose resource has no registered catalog still renders; labels degrade
// to raw values.
func (h *ViewHandler) toResponse(c *gin.Context, view *views.View) dto.ViewResponse {
	var cat filters.Catalog
	if list, ok := h.registry.Get(view.Resource); ok {
		cat = list.Filters
	}
	loc := negotiateLocale(c, h.bundle)
	return dto.NewViewResponse(view, dto.Resolve(view.Filters, cat, resolverFor(loc)))
}
