package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Service is a named, initialize-once backend component.
type Service interface {
	Name() string
	Initialize(ctx context.Context) error
}

// Plugin contributes routes and menu entries to the site.
type Plugin interface {
	Name() string
	Initialize(h *Host) error
}

type mount struct {
	plugin string
	path   string
}

// Host is what plugins see during startup: the router, the shared menus,
// the hook center and the initialized services.
type Host struct {
	Engine *gin.Engine
	Menus  *Menus
	Hooks  *hook.Center

	mu       sync.Mutex
	services map[string]Service
	mounts   []mount
	logger   *zap.Logger
}

func NewHost(engine *gin.Engine, hooks *hook.Center, logger *zap.Logger) *Host {
	return &Host{
		Engine:   engine,
		Menus:    NewMenus(),
		Hooks:    hooks,
		services: make(map[string]Service),
		logger:   logger,
	}
}

// RegisterRouter mounts the routes built by fn under path. Several plugins
// may share a mount path.
func (h *Host) RegisterRouter(pluginName, path string, fn func(*gin.RouterGroup)) {
	h.mu.Lock()
	h.mounts = append(h.mounts, mount{plugin: pluginName, path: path})
	h.mu.Unlock()

	fn(h.Engine.Group(path))
	h.logger.Debug("router registered", zap.String("plugin", pluginName), zap.String("path", path))
}

// Mounts lists "plugin path" pairs in registration order.
func (h *Host) Mounts() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.mounts))
	for i, m := range h.mounts {
		out[i] = m.plugin + " " + m.path
	}
	return out
}

// Service returns an initialized service by name.
func (h *Host) Service(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.services[name]
	return s, ok
}

// Services lists the initialized service names, sorted.
func (h *Host) Services() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, 0, len(h.services))
	for n := range h.services {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Load initializes services and then plugins, in the order given. The
// first failure aborts startup.
func (h *Host) Load(ctx context.Context, services []Service, plugins []Plugin) error {
	for _, s := range services {
		if err := s.Initialize(ctx); err != nil {
			return fmt.Errorf("service %s: %w", s.Name(), err)
		}
		h.mu.Lock()
		h.services[s.Name()] = s
		h.mu.Unlock()
		h.logger.Info("service initialized", zap.String("service", s.Name()))
	}
	for _, p := range plugins {
		if err := p.Initialize(h); err != nil {
			return fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		h.logger.Info("plugin initialized", zap.String("plugin", p.Name()))
	}
	return nil
}
