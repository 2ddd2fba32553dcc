package fetch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultCacheTTL is how long a cached page is considered fresh.
const DefaultCacheTTL = 24 * time.Hour

// Cache stores fetched pages keyed by URL.
type Cache interface {
	Get(ctx context.Context, url string) (*Result, bool, error)
	Put(ctx context.Context, result *Result) error
}

// SQLiteCache is a Cache backed by a local SQLite file.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// OpenSQLiteCache opens (or creates) the cache database at path.
func OpenSQLiteCache(ctx context.Context, path string, ttl time.Duration) (*SQLiteCache, error) {
	if path == "" {
		return nil, fmt.Errorf("cache path is empty")
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open page cache: %w", err)
	}
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to ping page cache: %w", err)
	}

	_, err = pool.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS pages (
	url          TEXT PRIMARY KEY,
	body         BLOB NOT NULL,
	content_type TEXT NOT NULL DEFAULT '',
	status_code  INTEGER NOT NULL,
	fetched_at   INTEGER NOT NULL
);`)
	if err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("failed to create pages table: %w", err)
	}

	return &SQLiteCache{db: pool, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached page for url if it is younger than the TTL.
func (c *SQLiteCache) Get(ctx context.Context, url string) (*Result, bool, error) {
	var (
		r         Result
		fetchedAt int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT url, body, content_type, status_code, fetched_at FROM pages WHERE url = ?`,
		url,
	).Scan(&r.URL, &r.Body, &r.ContentType, &r.StatusCode, &fetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached page: %w", err)
	}

	if c.now().Sub(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}
	return &r, true, nil
}

// Put stores or refreshes a page.
func (c *SQLiteCache) Put(ctx context.Context, result *Result) error {
	if result == nil {
		return nil
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO pages (url, body, content_type, status_code, fetched_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET
		     body = excluded.body,
		     content_type = excluded.content_type,
		     status_code = excluded.status_code,
		     fetched_at = excluded.fetched_at`,
		result.URL, result.Body, result.ContentType, result.StatusCode, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to store cached page: %w", err)
	}
	return nil
}

// Invalidate drops a cached page, forcing a re-fetch on next request.
func (c *SQLiteCache) Invalidate(ctx context.Context, url string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM pages WHERE url = ?`, url); err != nil {
		return fmt.Errorf("failed to invalidate cached page: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
