package db

import (
	"context"
	"fmt"
)

// schema holds the DDL for the two tables this package owns. EnsureSchema is
// idempotent so the server can run it at startup.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              UUID PRIMARY KEY,
	script          JSONB NOT NULL,
	responses       JSONB NOT NULL DEFAULT '[]',
	candidate_name  TEXT NOT NULL DEFAULT '',
	candidate_email TEXT NOT NULL DEFAULT '',
	overall_score   TEXT,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS cached_pages (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	url          TEXT NOT NULL UNIQUE,
	platform     TEXT,
	raw_html     TEXT NOT NULL,
	cleaned_text TEXT,
	content_hash TEXT,
	http_status  INTEGER,
	fetched_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at   TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_cached_pages_expires_at ON cached_pages (expires_at);
`

// EnsureSchema creates the tables and indexes if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
