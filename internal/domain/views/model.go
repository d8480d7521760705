// Package views provides saved filter views: named, per-user persisted
// applied-filter sets that can be re-applied to a list or shared via
// tokenized links.
package views

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"filterbar/internal/core/apperror"
	"filterbar/internal/domain/filters"
)

// View is a named applied-filter set owned by a user.
type View struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	OwnerID   string      `db:"owner_id" json:"ownerId"`
	Resource  string      `db:"resource" json:"resource"`
	Name      string      `db:"name" json:"name"`
	Filters   filters.Set `db:"-" json:"filters"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}

// NewView creates a view with a generated ID.
func NewView(ownerID, resource, name string, set filters.Set) *View {
	now := time.Now().UTC()
	return &View{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Resource:  resource,
		Name:      name,
		Filters:   set,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks required fields.
func (v *View) Validate(ctx context.Context) error {
	if strings.TrimSpace(v.Name) == "" {
		return apperror.NewValidation("view name is required").
			WithDetail("field", "name")
	}
	if v.Resource == "" {
		return apperror.NewValidation("view resource is required").
			WithDetail("field", "resource")
	}
	if v.OwnerID == "" {
		return apperror.NewValidation("view owner is required").
			WithDetail("field", "ownerId")
	}
	return nil
}

// Share is a tokenized link to a view. Only the bcrypt hash of the token
// secret is stored; the full token is returned to the caller once.
type Share struct {
	ID        uuid.UUID `db:"id"`
	ViewID    uuid.UUID `db:"view_id"`
	TokenHash []byte    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// Expired reports whether the share link has passed its expiry.
func (s *Share) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
