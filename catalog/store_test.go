package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "key", []byte("value"), time.Hour))
	data, hit, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, data)
	require.NoError(t, s.Delete(ctx, "key"))
}

func TestEntryExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	forever := newEntry([]byte("x"), 0, now)
	assert.True(t, forever.ExpiresAt.IsZero())
	assert.False(t, forever.expired(now.Add(1000*time.Hour)))

	short := newEntry([]byte("x"), time.Minute, now)
	assert.False(t, short.expired(now.Add(59*time.Second)))
	assert.True(t, short.expired(now.Add(61*time.Second)))

	doc := mongoDoc{ID: "k", Data: short.Data, ExpiresAt: short.ExpiresAt}
	assert.Equal(t, short, doc.toEntry())
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)

	_, hit, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, s.Set(ctx, "a", []byte("alpha"), 0))
	require.NoError(t, s.Set(ctx, "b", []byte("beta"), time.Hour))

	data, hit, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("alpha"), data)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"), "deleting a missing entry is fine")
	_, hit, _ = s.Get(ctx, "a")
	assert.False(t, hit)

	n, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, hit, _ = s.Get(ctx, "b")
	assert.False(t, hit)
}

func TestFileStore_ExpiredAndCorrupt(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "old", []byte("x"), time.Nanosecond))
	time.Sleep(2 * time.Millisecond)
	_, hit, err := s.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, hit)
	_, err = os.Stat(s.path("old"))
	assert.True(t, os.IsNotExist(err), "expired entry removed")

	require.NoError(t, os.MkdirAll(filepath.Dir(s.path("bad")), 0o755))
	require.NoError(t, os.WriteFile(s.path("bad"), []byte("{not json"), 0o644))
	_, hit, err = s.Get(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, hit)
	_, err = os.Stat(s.path("bad"))
	assert.True(t, os.IsNotExist(err), "corrupt entry removed")
}

func TestFileStore_ShardedPath(t *testing.T) {
	s := &FileStore{dir: "/tmp/x"}
	p := s.path("groups:abc")
	h := Hash([]byte("groups:abc"))
	assert.Equal(t, filepath.Join("/tmp/x", h[:2], h[2:]+".json"), p)
}

func TestHashKey(t *testing.T) {
	k1 := hashKey("groups", 1, 8)
	k2 := hashKey("groups", 1, 9)
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, hashKey("groups", 1, 8))
	assert.Len(t, k1, len("groups:")+64)
}

// TestRedisStore_Unreachable checks errors surface instead of fake misses.
func TestRedisStore_Unreachable(t *testing.T) {
	s := NewRedisStore(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer s.Close()

	_, _, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	require.Error(t, s.Ping(context.Background()))
}

// TestRedisStore_RoundTrip runs against a live server named by
// GENUM_TEST_REDIS_ADDR and is skipped otherwise.
func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("GENUM_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GENUM_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := NewRedisStore(&redis.Options{Addr: addr})
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	key := hashKey("test", time.Now().UnixNano())
	require.NoError(t, s.Set(ctx, key, []byte("payload"), time.Minute))
	data, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, s.Delete(ctx, key))
	_, ok, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}
