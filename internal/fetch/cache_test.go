package fetch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T, ttl time.Duration) *SQLiteCache {
	t.Helper()
	cache, err := OpenSQLiteCache(context.Background(), filepath.Join(t.TempDir(), "pages.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestSQLiteCache_PutGet(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t, time.Hour)

	_, ok, err := cache.Get(ctx, "https://example.com/job/1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, &Result{
		URL:         "https://example.com/job/1",
		Body:        []byte("<html>job</html>"),
		ContentType: "text/html",
		StatusCode:  200,
	}))

	got, ok, err := cache.Get(ctx, "https://example.com/job/1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "<html>job</html>", string(got.Body))
	assert.Equal(t, "text/html", got.ContentType)
	assert.Equal(t, 200, got.StatusCode)
}

func TestSQLiteCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t, time.Hour)

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return start }
	require.NoError(t, cache.Put(ctx, &Result{URL: "u", Body: []byte("x"), StatusCode: 200}))

	cache.now = func() time.Time { return start.Add(30 * time.Minute) }
	_, ok, err := cache.Get(ctx, "u")
	require.NoError(t, err)
	assert.True(t, ok)

	cache.now = func() time.Time { return start.Add(2 * time.Hour) }
	_, ok, err = cache.Get(ctx, "u")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteCache_OverwriteAndInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := openTestCache(t, time.Hour)

	require.NoError(t, cache.Put(ctx, &Result{URL: "u", Body: []byte("old"), StatusCode: 200}))
	require.NoError(t, cache.Put(ctx, &Result{URL: "u", Body: []byte("new"), StatusCode: 200}))

	got, ok, err := cache.Get(ctx, "u")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", string(got.Body))

	require.NoError(t, cache.Invalidate(ctx, "u"))
	_, ok, err = cache.Get(ctx, "u")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenSQLiteCache_EmptyPath(t *testing.T) {
	_, err := OpenSQLiteCache(context.Background(), "", time.Hour)
	assert.Error(t, err)
}
