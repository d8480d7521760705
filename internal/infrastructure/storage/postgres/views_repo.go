package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"filterbar/internal/core/apperror"
	"filterbar/internal/domain/filters"
	"filterbar/internal/domain/views"
)

var tracer = otel.Tracer("filterbar/storage")

// CompressionAlgo specifies the compression algorithm used for a stored
// filter payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// compressThreshold is the payload size above which filter sets are stored
// zstd-compressed instead of as plain JSON.
const compressThreshold = 4 * 1024

const uniqueViolationCode = "23505"

// Compile-time check that ViewRepo implements views.Repository.
var _ views.Repository = (*ViewRepo)(nil)

// ViewRepo is the PostgreSQL implementation of views.Repository.
type ViewRepo struct {
	pool    *Pool
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewViewRepo creates a view repository on the given pool.
func NewViewRepo(pool *Pool) (*ViewRepo, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return &ViewRepo{pool: pool, encoder: encoder, decoder: decoder}, nil
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func (r *ViewRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// viewRow is the database shape of a saved view. The filter payload lives
// in exactly one of the filters / filters_compressed columns depending on
// compression_algo.
type viewRow struct {
	ID                uuid.UUID `db:"id"`
	OwnerID           string    `db:"owner_id"`
	Resource          string    `db:"resource"`
	Name              string    `db:"name"`
	Filters           []byte    `db:"filters"`
	FiltersCompressed []byte    `db:"filters_compressed"`
	CompressionAlgo   string    `db:"compression_algo"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

var (
	viewColumns  = dbColumns[viewRow]()
	shareColumns = dbColumns[views.Share]()
)

// encodeFilters serializes a filter set, compressing payloads above the
// threshold.
func (r *ViewRepo) encodeFilters(set filters.Set) (plain, compressed []byte, algo CompressionAlgo, err error) {
	data, err := json.Marshal(set)
	if err != nil {
		return nil, nil, "", fmt.Errorf("marshal filters: %w", err)
	}
	if len(data) > compressThreshold {
		return nil, r.encoder.EncodeAll(data, nil), CompressionZstd, nil
	}
	return data, nil, CompressionNone, nil
}

// decodeFilters restores a filter set from its stored representation.
func (r *ViewRepo) decodeFilters(row viewRow) (filters.Set, error) {
	data := row.Filters
	if CompressionAlgo(row.CompressionAlgo) == CompressionZstd {
		decoded, err := r.decoder.DecodeAll(row.FiltersCompressed, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress filters: %w", err)
		}
		data = decoded
	}
	if len(data) == 0 {
		return filters.Set{}, nil
	}

	var set filters.Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal filters: %w", err)
	}
	return set, nil
}

func (r *ViewRepo) toView(row viewRow) (*views.View, error) {
	set, err := r.decodeFilters(row)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	return &views.View{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Resource:  row.Resource,
		Name:      row.Name,
		Filters:   set,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Create inserts a saved view.
func (r *ViewRepo) Create(ctx context.Context, view *views.View) error {
	ctx, span := tracer.Start(ctx, "ViewRepo.Create", trace.WithAttributes(
		attribute.String("view.id", view.ID.String()),
		attribute.String("view.resource", view.Resource),
	))
	defer span.End()

	plain, compressed, algo, err := r.encodeFilters(view.Filters)
	if err != nil {
		return apperror.NewInternal(err)
	}

	sql, args, err := r.builder().
		Insert("saved_views").
		Columns(viewColumns...).
		Values(
			view.ID, view.OwnerID, view.Resource, view.Name,
			plain, compressed, string(algo),
			view.CreatedAt, view.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperror.NewDuplicate("view", "name", view.Name)
		}
		return apperror.NewDatabase(err)
	}
	return nil
}

// Get fetches a view by id.
func (r *ViewRepo) Get(ctx context.Context, id uuid.UUID) (*views.View, error) {
	ctx, span := tracer.Start(ctx, "ViewRepo.Get", trace.WithAttributes(
		attribute.String("view.id", id.String()),
	))
	defer span.End()

	sql, args, err := r.builder().
		Select(viewColumns...).
		From("saved_views").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var row viewRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("view", id)
		}
		return nil, apperror.NewDatabase(err)
	}
	return r.toView(row)
}

// ListByOwner lists an owner's views, newest first. An empty resource
// lists across all resources.
func (r *ViewRepo) ListByOwner(ctx context.Context, ownerID, resource string) ([]*views.View, error) {
	ctx, span := tracer.Start(ctx, "ViewRepo.ListByOwner", trace.WithAttributes(
		attribute.String("view.resource", resource),
	))
	defer span.End()

	q := r.builder().
		Select(viewColumns...).
		From("saved_views").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")
	if resource != "" {
		q = q.Where(squirrel.Eq{"resource": resource})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var rows []viewRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, apperror.NewDatabase(err)
	}

	result := make([]*views.View, 0, len(rows))
	for _, row := range rows {
		view, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

// Update rewrites a view's name, filters and updated_at.
func (r *ViewRepo) Update(ctx context.Context, view *views.View) error {
	ctx, span := tracer.Start(ctx, "ViewRepo.Update", trace.WithAttributes(
		attribute.String("view.id", view.ID.String()),
	))
	defer span.End()

	plain, compressed, algo, err := r.encodeFilters(view.Filters)
	if err != nil {
		return apperror.NewInternal(err)
	}

	sql, args, err := r.builder().
		Update("saved_views").
		Set("name", view.Name).
		Set("filters", plain).
		Set("filters_compressed", compressed).
		Set("compression_algo", string(algo)).
		Set("updated_at", view.UpdatedAt).
		Where(squirrel.Eq{"id": view.ID}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("view", view.ID)
	}
	return nil
}

// Delete removes a view. Shares reference views with ON DELETE CASCADE.
func (r *ViewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "ViewRepo.Delete", trace.WithAttributes(
		attribute.String("view.id", id.String()),
	))
	defer span.End()

	sql, args, err := r.builder().
		Delete("saved_views").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewDatabase(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("view", id)
	}
	return nil
}

// CreateShare inserts a share link.
func (r *ViewRepo) CreateShare(ctx context.Context, share *views.Share) error {
	ctx, span := tracer.Start(ctx, "ViewRepo.CreateShare", trace.WithAttributes(
		attribute.String("share.view_id", share.ViewID.String()),
	))
	defer span.End()

	sql, args, err := r.builder().
		Insert("view_shares").
		Columns(shareColumns...).
		Values(share.ID, share.ViewID, share.TokenHash, share.CreatedAt, share.ExpiresAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return apperror.NewDatabase(err)
	}
	return nil
}

// GetShare fetches a share link by id.
func (r *ViewRepo) GetShare(ctx context.Context, id uuid.UUID) (*views.Share, error) {
	ctx, span := tracer.Start(ctx, "ViewRepo.GetShare", trace.WithAttributes(
		attribute.String("share.id", id.String()),
	))
	defer span.End()

	sql, args, err := r.builder().
		Select(shareColumns...).
		From("view_shares").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var share views.Share
	if err := pgxscan.Get(ctx, r.pool, &share, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("share", id)
		}
		return nil, apperror.NewDatabase(err)
	}
	return &share, nil
}
