package postgres

import "context"

// schemaDDL creates the saved view tables.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS saved_views (
		id UUID PRIMARY KEY,
		owner_id TEXT NOT NULL,
		resource TEXT NOT NULL,
		name TEXT NOT NULL,
		filters JSONB,
		filters_compressed BYTEA,
		compression_algo TEXT NOT NULL DEFAULT 'none',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (owner_id, resource, name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_views_owner ON saved_views (owner_id, resource)`,
	`CREATE TABLE IF NOT EXISTS view_shares (
		id UUID PRIMARY KEY,
		view_id UUID NOT NULL REFERENCES saved_views(id) ON DELETE CASCADE,
		token_hash BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
}

// EnsureSchema creates the saved view tables if missing. Intended for dev
// and demo environments; production deployments run migrations externally.
func EnsureSchema(ctx context.Context, pool *Pool) error {
	for _, ddl := range schemaDDL {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
