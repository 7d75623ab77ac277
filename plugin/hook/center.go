package hook

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrInterrupt signals that a handler wants to stop further processing.
var ErrInterrupt = errors.New("hook interrupted")

// Fn is a hook handler.
// Returns (data, nil) to continue, or (data, ErrInterrupt) to stop.
type Fn func(ctx context.Context, event string, data interface{}) (interface{}, error)

type entry struct {
	priority int
	fn       Fn
	name     string
}

// Center manages event hook registrations shared by plugins.
type Center struct {
	mu    sync.RWMutex
	hooks map[string][]*entry
}

func NewCenter() *Center {
	return &Center{hooks: make(map[string][]*entry)}
}

// Register adds fn for event with the given priority (lower runs first).
// name is used for Unregister.
func (c *Center) Register(event string, priority int, name string, fn Fn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries := append(c.hooks[event], &entry{priority: priority, fn: fn, name: name})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].priority < entries[j].priority
	})
	c.hooks[event] = entries
}

// Unregister removes all hooks with the given name for event.
func (c *Center) Unregister(event, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks[event] = without(c.hooks[event], name)
}

// UnregisterAll removes every hook registered under name.
func (c *Center) UnregisterAll(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for event, entries := range c.hooks {
		c.hooks[event] = without(entries, name)
	}
}

func without(entries []*entry, name string) []*entry {
	n := 0
	for _, e := range entries {
		if e.name != name {
			entries[n] = e
			n++
		}
	}
	return entries[:n]
}

// Trigger runs the hooks for event in priority order, threading data
// through each. An ErrInterrupt stops the chain and is returned; any
// other handler error is ignored.
func (c *Center) Trigger(ctx context.Context, event string, data interface{}) (interface{}, error) {
	c.mu.RLock()
	entries := make([]*entry, len(c.hooks[event]))
	copy(entries, c.hooks[event])
	c.mu.RUnlock()

	var err error
	for _, e := range entries {
		data, err = e.fn(ctx, event, data)
		if errors.Is(err, ErrInterrupt) {
			return data, err
		}
	}
	return data, nil
}

// Account events, fired after the change has been stored.
const (
	AfterLogin          = "after_login"
	AfterLogout         = "after_logout"
	AfterEmailChange    = "after_email_change"
	AfterPasswordChange = "after_password_change"
	AfterUnstuck        = "after_unstuck"
)

// AccountEvent is the payload of the account events.
type AccountEvent struct {
	TraceID   string
	AccountID int64
	CharID    int64
	IP        string
	Detail    map[string]interface{}
}
