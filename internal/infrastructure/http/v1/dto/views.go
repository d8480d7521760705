package dto

import (
	"time"

	"filterbar/internal/domain/views"
)

// CreateViewRequest saves a named applied-filter set.
type CreateViewRequest struct {
	Resource string          `json:"resource" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Filters  []AppliedFilter `json:"filters"`
}

// RenameViewRequest changes a view's display name.
type RenameViewRequest struct {
	Name string `json:"name" binding:"required"`
}

// ViewResponse is the wire shape of a saved view, filters resolved for
// the request locale.
type ViewResponse struct {
	ID        string           `json:"id"`
	Resource  string           `json:"resource"`
	Name      string           `json:"name"`
	Filters   []ResolvedFilter `json:"filters"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NewViewResponse builds a view response from the domain view and its
// resolved filters.
func NewViewResponse(v *views.View, resolved []ResolvedFilter) ViewResponse {
	return ViewResponse{
		ID:        v.ID.String(),
		Resource:  v.Resource,
		Name:      v.Name,
		Filters:   resolved,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// ShareResponse returns a freshly minted share token. The token is shown
// once and cannot be recovered.
type ShareResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
