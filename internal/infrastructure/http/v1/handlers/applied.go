package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filterbar/internal/core/apperror"
	"filterbar/internal/domain/filters"
	"filterbar/internal/i18n"
	"filterbar/internal/infrastructure/http/v1/dto"
	"filterbar/internal/registry"
)

// AppliedHandler reconciles applied-filter sets and resolves their display
// labels. The handler holds no per-request state: the client sends its
// current set, gets the next one back and replaces its own copy.
type AppliedHandler struct {
	*BaseHandler
	registry *registry.Registry
	bundle   *i18n.Bundle
}

// NewAppliedHandler creates a new applied-filter handler.
func NewAppliedHandler(reg *registry.Registry, bundle *i18n.Bundle) *AppliedHandler {
	return &AppliedHandler{
		BaseHandler: NewBaseHandler(),
		registry:    reg,
		bundle:      bundle,
	}
}

// Add reconciles a candidate filter into the current set. A candidate
// whose composite id already exists is silently dropped (first-wins); a
// candidate whose value fails catalog validation is rejected.
// POST /api/v1/catalogs/:resource/applied
func (h *AppliedHandler) Add(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}

	var req dto.AddFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	candidate := req.Filter.Domain()
	if def, found := list.Filters.Find(candidate.Key); found {
		if err := def.ValidateValue(candidate.Value); err != nil {
			h.Error(c, err)
			return
		}
	}

	next := dto.ToSet(req.Current).Add(candidate)
	h.respond(c, list, next)
}

// Remove excises the first entry with the given composite id. Removing an
// absent id is a harmless no-op.
// POST /api/v1/catalogs/:resource/applied/remove
func (h *AppliedHandler) Remove(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}

	var req dto.RemoveFilterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	next := dto.ToSet(req.Current).Remove(req.ID)
	h.respond(c, list, next)
}

// Labels resolves display labels for a set without changing it.
// POST /api/v1/catalogs/:resource/labels
func (h *AppliedHandler) Labels(c *gin.Context) {
	list, ok := h.list(c)
	if !ok {
		return
	}

	var req dto.LabelsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.respond(c, list, dto.ToSet(req.Filters))
}

func (h *AppliedHandler) list(c *gin.Context) (registry.ListDef, bool) {
	resource := c.Param("resource")
	list, ok := h.registry.Get(resource)
	if !ok {
		h.Error(c, apperror.NewNotFound("list", resource))
		return registry.ListDef{}, false
	}
	return list, true
}

func (h *AppliedHandler) respond(c *gin.Context, list registry.ListDef, set filters.Set) {
	loc := negotiateLocale(c, h.bundle)
	c.JSON(http.StatusOK, dto.FilterSetResponse{
		Resource: list.Resource,
		Locale:   loc.Tag().String(),
		Filters:  dto.Resolve(set, list.Filters, resolverFor(loc)),
	})
}
