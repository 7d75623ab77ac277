package local

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("cache: key not found")

// Config holds LocalCache settings.
type Config struct {
	GCInterval time.Duration
	// Now overrides the clock used for expiry; nil means time.Now.
	Now func() time.Time
}

// entry holds a cached string value with an optional expiry.
type entry struct {
	data     string
	expireAt time.Time
	noExpiry bool
}

func (e *entry) expired(now time.Time) bool {
	return !e.noExpiry && now.After(e.expireAt)
}

// LocalCache is an in-process key/value cache with per-key TTLs.
type LocalCache struct {
	mu         sync.Mutex // guards SetNX
	kv         sync.Map   // key → *entry
	now        func() time.Time
	gcInterval time.Duration
	stopGC     chan struct{}
	stopOnce   sync.Once
}

// NewCache creates a LocalCache and starts the background GC goroutine.
func NewCache(cfg Config) (*LocalCache, error) {
	interval := cfg.GCInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	c := &LocalCache{
		now:        now,
		gcInterval: interval,
		stopGC:     make(chan struct{}),
	}
	go c.runGC()
	return c, nil
}

// Close stops the background GC goroutine.
func (c *LocalCache) Close() {
	c.stopOnce.Do(func() { close(c.stopGC) })
}

func (c *LocalCache) runGC() {
	ticker := time.NewTicker(c.gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stopGC:
			return
		}
	}
}

func (c *LocalCache) sweep() {
	now := c.now()
	c.kv.Range(func(k, v interface{}) bool {
		if e, ok := v.(*entry); ok && e.expired(now) {
			c.kv.Delete(k)
		}
		return true
	})
}

func (c *LocalCache) newEntry(value string, ttl time.Duration) *entry {
	e := &entry{data: value}
	if ttl > 0 {
		e.expireAt = c.now().Add(ttl)
	} else {
		e.noExpiry = true
	}
	return e
}

// load returns the live entry for key, dropping it if it has expired.
func (c *LocalCache) load(key string) (*entry, bool) {
	v, ok := c.kv.Load(key)
	if !ok {
		return nil, false
	}
	e := v.(*entry)
	if e.expired(c.now()) {
		c.kv.CompareAndDelete(key, v)
		return nil, false
	}
	return e, true
}

func (c *LocalCache) Get(_ context.Context, key string) (string, error) {
	e, ok := c.load(key)
	if !ok {
		return "", ErrNotFound
	}
	return e.data, nil
}

func (c *LocalCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.kv.Store(key, c.newEntry(value, ttl))
	return nil
}

func (c *LocalCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.kv.Delete(k)
	}
	return nil
}

func (c *LocalCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.load(key)
	return ok, nil
}

func (c *LocalCache) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.load(key); ok {
		return false, nil
	}
	c.kv.Store(key, c.newEntry(value, ttl))
	return true, nil
}

func (c *LocalCache) Expire(_ context.Context, key string, ttl time.Duration) error {
	e, ok := c.load(key)
	if !ok {
		return ErrNotFound
	}
	c.kv.Store(key, c.newEntry(e.data, ttl))
	return nil
}
