package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBColumns_ViewRow(t *testing.T) {
	want := []string{
		"id", "owner_id", "resource", "name",
		"filters", "filters_compressed", "compression_algo",
		"created_at", "updated_at",
	}
	assert.Equal(t, want, dbColumns[viewRow]())
}

func TestDBColumns_SkipsUntaggedAndIgnored(t *testing.T) {
	type embedded struct {
		CreatedAt string `db:"created_at"`
	}
	type row struct {
		embedded
		ID       string `db:"id"`
		Ignored  string `db:"-"`
		Untagged string
	}

	assert.Equal(t, []string{"created_at", "id"}, dbColumns[row]())
}

func TestDBColumns_NonStruct(t *testing.T) {
	assert.Nil(t, dbColumns[int]())
}
