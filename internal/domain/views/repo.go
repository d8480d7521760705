package views

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for saved views and their shares.
// Implementations return apperror.NewNotFound for absent rows.
type Repository interface {
	Create(ctx context.Context, view *View) error
	Get(ctx context.Context, id uuid.UUID) (*View, error)
	ListByOwner(ctx context.Context, ownerID, resource string) ([]*View, error)
	Update(ctx context.Context, view *View) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateShare(ctx context.Context, share *Share) error
	GetShare(ctx context.Context, id uuid.UUID) (*Share, error)
}
