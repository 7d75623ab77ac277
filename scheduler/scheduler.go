package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is a unit of background work. Its context is cancelled when the
// task is removed or the scheduler stops.
type Task func(ctx context.Context) error

// Scheduler runs named periodic and one-shot background tasks, such as
// the item name index refresh.
type Scheduler struct {
	mu     sync.Mutex
	tasks  map[string]context.CancelFunc
	ctx    context.Context
	stop   context.CancelFunc
	logger *zap.Logger
}

func New(logger *zap.Logger) *Scheduler {
	ctx, stop := context.WithCancel(context.Background())
	return &Scheduler{
		tasks:  make(map[string]context.CancelFunc),
		ctx:    ctx,
		stop:   stop,
		logger: logger,
	}
}

// Every runs fn each interval until removed. A task with the same name is
// replaced.
func (s *Scheduler) Every(name string, interval time.Duration, fn Task) {
	ctx := s.register(name)
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.run(ctx, name, fn)
			case <-ctx.Done():
				return
			}
		}
	}()
	s.logger.Info("scheduler task registered", zap.String("name", name), zap.Duration("interval", interval))
}

// After runs fn once after delay. A pending task with the same name is
// cancelled.
func (s *Scheduler) After(name string, delay time.Duration, fn Task) {
	ctx := s.register(name)
	go func() {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
			s.run(ctx, name, fn)
			s.mu.Lock()
			// only drop our own registration; a replacement may exist
			if ctx.Err() == nil {
				s.tasks[name]()
				delete(s.tasks, name)
			}
			s.mu.Unlock()
		case <-ctx.Done():
		}
	}()
}

func (s *Scheduler) register(name string) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.tasks[name]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.tasks[name] = cancel
	return ctx
}

func (s *Scheduler) run(ctx context.Context, name string, fn Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduler task panicked", zap.String("task", name), zap.Any("recover", r))
		}
	}()
	start := time.Now()
	if err := fn(ctx); err != nil {
		s.logger.Warn("scheduler task failed", zap.String("task", name), zap.Error(err))
		return
	}
	s.logger.Debug("scheduler task done", zap.String("task", name), zap.Duration("took", time.Since(start)))
}

// Remove cancels a task by name.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.tasks[name]; ok {
		cancel()
		delete(s.tasks, name)
	}
}

// Stop cancels every task. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stop()
}

// Tasks returns the registered task names, sorted.
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
