package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is the default time-to-live for cached pages (7 days)
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// CachedPage represents a fetched job posting page stored for reuse
type CachedPage struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	Platform    string     `json:"platform,omitempty"`
	RawHTML     string     `json:"-"` // Don't serialize (large)
	CleanedText string     `json:"cleaned_text,omitempty"`
	ContentHash string     `json:"content_hash,omitempty"`
	HTTPStatus  *int       `json:"http_status,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ContentHash computes the sha256 hex digest of page content. Used to skip
// reprocessing when a refetched page has not changed.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// GetFreshPage retrieves a cached page by URL if it has not expired.
// Returns nil without error on a cache miss.
func (db *DB) GetFreshPage(ctx context.Context, url string) (*CachedPage, error) {
	var page CachedPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, COALESCE(platform, ''), raw_html, COALESCE(cleaned_text, ''),
		        COALESCE(content_hash, ''), http_status, fetched_at, expires_at
		 FROM cached_pages
		 WHERE url = $1 AND (expires_at IS NULL OR expires_at > NOW())`,
		url,
	).Scan(&page.ID, &page.URL, &page.Platform, &page.RawHTML, &page.CleanedText,
		&page.ContentHash, &page.HTTPStatus, &page.FetchedAt, &page.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &page, nil
}

// UpsertPage stores a fetched page, replacing any previous fetch of the same
// URL, and returns the stored record's ID.
func (db *DB) UpsertPage(ctx context.Context, page *CachedPage, ttl time.Duration) (uuid.UUID, error) {
	if ttl <= 0 {
		ttl = DefaultPageCacheTTL
	}
	if page.ContentHash == "" {
		page.ContentHash = ContentHash(page.RawHTML)
	}
	expiresAt := time.Now().Add(ttl)

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cached_pages (url, platform, raw_html, cleaned_text, content_hash, http_status, fetched_at, expires_at)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, NOW(), $7)
		 ON CONFLICT (url) DO UPDATE
		 SET platform = NULLIF($2, ''), raw_html = $3, cleaned_text = NULLIF($4, ''),
		     content_hash = $5, http_status = $6, fetched_at = NOW(), expires_at = $7
		 RETURNING id`,
		page.URL, page.Platform, page.RawHTML, page.CleanedText, page.ContentHash,
		page.HTTPStatus, expiresAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert cached page: %w", err)
	}
	page.ID = id
	return id, nil
}

// PurgeExpiredPages removes cache entries past their expiry. Returns the
// number of rows deleted.
func (db *DB) PurgeExpiredPages(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM cached_pages WHERE expires_at IS NOT NULL AND expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired pages: %w", err)
	}
	return result.RowsAffected(), nil
}
