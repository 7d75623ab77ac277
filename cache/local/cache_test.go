package local

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache(t *testing.T) *LocalCache {
	c, err := NewCache(Config{GCInterval: time.Minute})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func newClockedCache(t *testing.T) (*LocalCache, *fakeClock) {
	clk := &fakeClock{now: time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)}
	c, err := NewCache(Config{GCInterval: time.Hour, Now: clk.Now})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, clk
}

func TestGetSet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	err := c.Set(ctx, "key1", "value1", 0)
	require.NoError(t, err)

	v, err := c.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", v)
}

func TestGetMissing(t *testing.T) {
	c := newTestCache(t)
	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTTLExpiry(t *testing.T) {
	c, clk := newClockedCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "item-1", "{}", 600*time.Second))

	clk.Advance(599 * time.Second)
	v, err := c.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	clk.Advance(2 * time.Second)
	_, err = c.Get(ctx, "item-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepDropsExpired(t *testing.T) {
	c, clk := newClockedCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "a", time.Second))
	require.NoError(t, c.Set(ctx, "forever", "b", 0))

	clk.Advance(time.Minute)
	c.sweep()

	_, ok := c.kv.Load("short")
	assert.False(t, ok)
	_, ok = c.kv.Load("forever")
	assert.True(t, ok)
}

func TestDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	_ = c.Set(ctx, "k", "v", 0)
	_ = c.Del(ctx, "k")
	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExists(t *testing.T) {
	c, clk := newClockedCache(t)
	ctx := context.Background()
	_ = c.Set(ctx, "k", "v", time.Second)

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	clk.Advance(2 * time.Second)
	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSetNX(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	ok, err := c.SetNX(ctx, "lock", "owner", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SetNX(ctx, "lock", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok) // already held
}

func TestExpireExtends(t *testing.T) {
	c, clk := newClockedCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "session:abc", "7", time.Minute))
	clk.Advance(50 * time.Second)
	require.NoError(t, c.Expire(ctx, "session:abc", time.Minute))
	clk.Advance(50 * time.Second)

	v, err := c.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	assert.ErrorIs(t, c.Expire(ctx, "missing", time.Minute), ErrNotFound)
}

func TestCloseTwice(t *testing.T) {
	c, err := NewCache(Config{})
	require.NoError(t, err)
	c.Close()
	assert.NotPanics(t, c.Close)
}
