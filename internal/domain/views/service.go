package views

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"filterbar/internal/core/apperror"
	appctx "filterbar/internal/core/context"
	"filterbar/internal/domain/filters"
	"filterbar/internal/registry"
)

// DefaultShareTTL is how long a share link stays valid unless configured.
const DefaultShareTTL = 7 * 24 * time.Hour

// Service provides business logic for saved filter views.
type Service struct {
	repo     Repository
	registry *registry.Registry
	shareTTL time.Duration
}

// NewService creates a view service. A zero shareTTL falls back to
// DefaultShareTTL.
func NewService(repo Repository, reg *registry.Registry, shareTTL time.Duration) *Service {
	if shareTTL <= 0 {
		shareTTL = DefaultShareTTL
	}
	return &Service{repo: repo, registry: reg, shareTTL: shareTTL}
}

// Create saves a new view for the authenticated user. The incoming set is
// folded through Add so duplicates collapse first-wins, and values of
// filters that match a catalog definition are validated. Filters with no
// catalog entry are kept as-is; the resolver degrades them gracefully.
func (s *Service) Create(ctx context.Context, resource, name string, set filters.Set) (*View, error) {
	ownerID := appctx.GetUserID(ctx)
	if ownerID == "" {
		return nil, apperror.NewUnauthorized("authentication required")
	}

	list, ok := s.registry.Get(resource)
	if !ok {
		return nil, apperror.NewNotFound("list", resource)
	}

	normalized := filters.Set{}
	for _, f := range set {
		if def, found := list.Filters.Find(f.Key); found {
			if err := def.ValidateValue(f.Value); err != nil {
				return nil, err
			}
		}
		normalized = normalized.Add(f)
	}

	view := NewView(ownerID, resource, name, normalized)
	if err := view.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// Get returns a view owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*View, error) {
	view, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// List returns the authenticated user's views for a resource. An empty
// resource lists across all resources.
func (s *Service) List(ctx context.Context, resource string) ([]*View, error) {
	ownerID := appctx.GetUserID(ctx)
	if ownerID == "" {
		return nil, apperror.NewUnauthorized("authentication required")
	}
	return s.repo.ListByOwner(ctx, ownerID, resource)
}

// Rename changes a view's display name.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (*View, error) {
	view, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	view.Name = name
	view.UpdatedAt = time.Now().UTC()
	if err := view.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes a view owned by the authenticated user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Share issues a share token for a view. The token is
// "<shareID>.<secret>"; only the bcrypt hash of the secret is stored, so
// the token cannot be recovered later.
func (s *Service) Share(ctx context.Context, id uuid.UUID) (string, time.Time, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", time.Time{}, err
	}

	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", time.Time{}, apperror.NewInternal(err)
	}

	now := time.Now().UTC()
	share := &Share{
		ID:        uuid.New(),
		ViewID:    id,
		TokenHash: hash,
		CreatedAt: now,
		ExpiresAt: now.Add(s.shareTTL),
	}
	if err := s.repo.CreateShare(ctx, share); err != nil {
		return "", time.Time{}, err
	}

	return share.ID.String() + "." + secret, share.ExpiresAt, nil
}

// Open resolves a share token to its view. Works without authentication.
// Invalid, expired and mismatched tokens all surface as not-found so the
// endpoint leaks nothing about existing shares.
func (s *Service) Open(ctx context.Context, token string) (*View, error) {
	shareID, secret, ok := strings.Cut(token, ".")
	if !ok {
		return nil, apperror.NewNotFound("shared view", token)
	}
	id, err := uuid.Parse(shareID)
	if err != nil {
		return nil, apperror.NewNotFound("shared view", token)
	}

	share, err := s.repo.GetShare(ctx, id)
	if err != nil {
		return nil, apperror.NewNotFound("shared view", token)
	}
	if share.Expired(time.Now().UTC()) {
		return nil, apperror.NewNotFound("shared view", token)
	}
	if bcrypt.CompareHashAndPassword(share.TokenHash, []byte(secret)) != nil {
		return nil, apperror.NewNotFound("shared view", token)
	}

	return s.repo.Get(ctx, share.ViewID)
}

// checkOwnership rejects access to other users' views. Admins may read
// anything.
func (s *Service) checkOwnership(ctx context.Context, view *View) error {
	user := appctx.GetUser(ctx)
	if user == nil {
		return apperror.NewUnauthorized("authentication required")
	}
	if user.IsAdmin || user.UserID == view.OwnerID {
		return nil
	}
	return apperror.NewForbidden("view belongs to another user")
}
