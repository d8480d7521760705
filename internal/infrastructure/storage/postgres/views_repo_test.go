package postgres

import (
	"fmt"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filterbar/internal/domain/filters"
)

func newTestRepo(t *testing.T) *ViewRepo {
	t.Helper()
	repo, err := NewViewRepo(nil)
	require.NoError(t, err)
	return repo
}

func TestEncodeFilters_SmallPayloadStaysPlain(t *testing.T) {
	repo := newTestRepo(t)

	set := filters.Set{
		{Key: "status", Value: "open"},
		{Key: "created_max", Value: "2020-01-15"},
	}

	plain, compressed, algo, err := repo.encodeFilters(set)
	require.NoError(t, err)

	assert.Equal(t, CompressionNone, algo)
	assert.NotEmpty(t, plain)
	assert.Empty(t, compressed)
}

func TestEncodeFilters_LargePayloadCompressed(t *testing.T) {
	repo := newTestRepo(t)

	var set filters.Set
	for i := 0; i < 500; i++ {
		set = append(set, filters.Applied{
			Key:   fmt.Sprintf("key_%d", i),
			Value: fmt.Sprintf("some reasonably long filter value number %d", i),
		})
	}

	plain, compressed, algo, err := repo.encodeFilters(set)
	require.NoError(t, err)

	assert.Equal(t, CompressionZstd, algo)
	assert.Empty(t, plain)
	assert.NotEmpty(t, compressed)
}

func TestFilterRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name string
		set  filters.Set
	}{
		{"empty set", filters.Set{}},
		{"small set", filters.Set{
			{Key: "status", Value: "open", Label: "Open things"},
			{Key: "created_min", Value: "2020-01-01"},
		}},
		{"large set crossing the compression threshold", func() filters.Set {
			var s filters.Set
			for i := 0; i < 500; i++ {
				s = append(s, filters.Applied{
					Key:   fmt.Sprintf("key_%d", i),
					Value: fmt.Sprintf("value_%d", i),
				})
			}
			return s
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, compressed, algo, err := repo.encodeFilters(tt.set)
			require.NoError(t, err)

			got, err := repo.decodeFilters(viewRow{
				Filters:           plain,
				FiltersCompressed: compressed,
				CompressionAlgo:   string(algo),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.set, got)
		})
	}
}

func TestDecodeFilters_EmptyRow(t *testing.T) {
	repo := newTestRepo(t)

	set, err := repo.decodeFilters(viewRow{CompressionAlgo: string(CompressionNone)})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestDecodeFilters_CorruptCompressedPayload(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.decodeFilters(viewRow{
		FiltersCompressed: []byte("not zstd data"),
		CompressionAlgo:   string(CompressionZstd),
	})
	assert.Error(t, err)
}

func TestListByOwnerQuery(t *testing.T) {
	repo := newTestRepo(t)

	q := repo.builder().
		Select(viewColumns...).
		From("saved_views").
		Where(squirrel.Eq{"owner_id": "alice"}).
		OrderBy("created_at DESC").
		Where(squirrel.Eq{"resource": "orders"})

	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "owner_id = $1")
	assert.Contains(t, sql, "resource = $2")
	assert.Contains(t, sql, "ORDER BY created_at DESC")
	assert.Equal(t, []any{"alice", "orders"}, args)
}
