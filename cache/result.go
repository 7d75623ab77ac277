package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Results memoizes composed lookups as JSON documents. Cache trouble is
// logged and treated as a miss; it never fails the lookup itself.
type Results struct {
	c      Cache
	logger *zap.Logger
}

func NewResults(c Cache, logger *zap.Logger) *Results {
	return &Results{c: c, logger: logger}
}

// Load decodes the value stored at key into dst. It reports false on a
// miss or when the stored document cannot be decoded.
func (r *Results) Load(ctx context.Context, key string, dst any) bool {
	raw, err := r.c.Get(ctx, key)
	if err != nil {
		if !IsNotFound(err) {
			r.logger.Warn("result cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.logger.Warn("result cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Store encodes v and keeps it for ttl.
func (r *Results) Store(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.Warn("result cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := r.c.Set(ctx, key, string(raw), ttl); err != nil {
		r.logger.Warn("result cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Forget drops the given keys.
func (r *Results) Forget(ctx context.Context, keys ...string) {
	if err := r.c.Del(ctx, keys...); err != nil {
		r.logger.Warn("result cache del failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

// Remember returns the cached value for key, or calls fn and caches its
// result for ttl. Failed calls are never cached.
func Remember[T any](ctx context.Context, r *Results, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var v T
	if r.Load(ctx, key, &v) {
		return v, nil
	}
	v, err := fn()
	if err != nil {
		return v, err
	}
	r.Store(ctx, key, v, ttl)
	return v, nil
}
