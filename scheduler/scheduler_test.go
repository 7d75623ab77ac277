package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func counter(n *int32, by int32) Task {
	return func(context.Context) error {
		atomic.AddInt32(n, by)
		return nil
	}
}

func TestEvery_Fires(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.Every("reindex", 20*time.Millisecond, counter(&count, 1))
	time.Sleep(120 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&count), int32(3))
}

func TestEvery_Replaces(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var first, second int32
	s.Every("reindex", 20*time.Millisecond, counter(&first, 1))
	time.Sleep(30 * time.Millisecond)
	s.Every("reindex", 20*time.Millisecond, counter(&second, 1))
	time.Sleep(40 * time.Millisecond)

	snap := atomic.LoadInt32(&first)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, snap, atomic.LoadInt32(&first), "old task must stop after replacement")
	assert.Positive(t, atomic.LoadInt32(&second))
	assert.Equal(t, []string{"reindex"}, s.Tasks())
}

func TestEvery_ErrorsAndPanicsKeepRunning(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var calls int32
	s.Every("flaky", 15*time.Millisecond, func(context.Context) error {
		if atomic.AddInt32(&calls, 1)%2 == 0 {
			panic("oops")
		}
		return errors.New("store unavailable")
	})
	time.Sleep(100 * time.Millisecond)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestAfter_FiresOnceAndReplaces(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.After("warm", 500*time.Millisecond, counter(&count, 1))
	s.After("warm", 30*time.Millisecond, counter(&count, 10))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(10), atomic.LoadInt32(&count))
	assert.Empty(t, s.Tasks())
}

func TestRemove(t *testing.T) {
	s := New(zap.NewNop())
	defer s.Stop()

	var count int32
	s.After("d", 60*time.Millisecond, counter(&count, 1))
	s.Every("x", time.Hour, counter(&count, 1))
	s.Every("y", time.Hour, counter(&count, 1))
	s.Remove("d")
	s.Remove("x")
	s.Remove("nope")
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&count))
	assert.Equal(t, []string{"y"}, s.Tasks())
}

func TestStop(t *testing.T) {
	s := New(zap.NewNop())

	var count int32
	var cancelled atomic.Bool
	s.Every("a", 20*time.Millisecond, counter(&count, 1))
	s.After("b", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop()

	time.Sleep(30 * time.Millisecond)
	snap := atomic.LoadInt32(&count)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, snap, atomic.LoadInt32(&count))
	require.Eventually(t, cancelled.Load, time.Second, 10*time.Millisecond)
}
