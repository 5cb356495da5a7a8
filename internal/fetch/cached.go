// Package fetch - cached.go wraps URL fetching with database-backed caching.
package fetch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-scripter/internal/db"
)

// CachedFetcher fetches job posting pages, reusing database-cached copies
// while they are fresh. A nil database degrades to plain fetching.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool      // Whether this result came from cache
	PageID    uuid.UUID // Database ID of the cached page
}

// Fetch retrieves a job posting URL, returning the cached copy when fresh.
// Fresh fetches are parsed with platform-specific selectors and stored back
// to the cache; cache write failures never fail the fetch.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshPage(ctx, urlStr)
		if err != nil {
			return nil, &Error{
				URL:     urlStr,
				Message: "failed to check page cache",
				Cause:   err,
			}
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       cached.RawHTML,
					Text:       cached.CleanedText,
					StatusCode: derefInt(cached.HTTPStatus),
				},
				FromCache: true,
				PageID:    cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform))
	result.Text = text

	cachedResult := &CachedResult{Result: result}
	if f.db != nil {
		page := &db.CachedPage{
			URL:         urlStr,
			Platform:    string(platform),
			RawHTML:     result.HTML,
			CleanedText: result.Text,
			HTTPStatus:  &result.StatusCode,
		}
		if id, err := f.db.UpsertPage(ctx, page, f.cacheTTL); err == nil {
			cachedResult.PageID = id
		}
	}

	return cachedResult, nil
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
