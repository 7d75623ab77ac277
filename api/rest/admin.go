package rest

import (
	"net/http"

	"github.com/arcanusdsp/server/darkstar"
	"github.com/arcanusdsp/server/plugin"
	"github.com/arcanusdsp/server/scheduler"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles admin-only REST endpoints.
// Routes should be protected by AdminAuth middleware.
type AdminHandler struct {
	ds     *darkstar.Service
	host   *plugin.Host
	sched  *scheduler.Scheduler
	logger *zap.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(ds *darkstar.Service, host *plugin.Host, sched *scheduler.Scheduler, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{ds: ds, host: host, sched: sched, logger: logger}
}

// Routes mounts the admin endpoints on g, which should already carry
// AdminAuth.
func (h *AdminHandler) Routes(g *gin.RouterGroup) {
	g.GET("/metrics", h.Metrics)
	g.GET("/scheduler", h.ListSchedulerTasks)
	g.POST("/items/reindex", h.ReindexItems)
}

// Metrics returns server health metrics.
// GET /admin/metrics
func (h *AdminHandler) Metrics(c *gin.Context) {
	idx := h.ds.Items.Index()
	c.JSON(http.StatusOK, gin.H{
		"item_index_ready": idx.Ready(),
		"item_index_size":  idx.Len(),
		"scheduler_tasks":  h.sched.Tasks(),
		"services":         h.host.Services(),
		"mounts":           h.host.Mounts(),
	})
}

// ListSchedulerTasks returns names of all registered tasks.
// GET /admin/scheduler
func (h *AdminHandler) ListSchedulerTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": h.sched.Tasks()})
}

// ReindexItems rebuilds the item name index now.
// POST /admin/items/reindex
func (h *AdminHandler) ReindexItems(c *gin.Context) {
	if err := h.ds.RebuildItemIndex(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reindex failed"})
		return
	}
	h.logger.Info("admin rebuilt item index", zap.String("ip", c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": h.ds.Items.Index().Len()})
}

// AdminAuth returns a middleware that checks the X-Admin-Key header.
// If adminKey is empty all admin endpoints are disabled (503).
func AdminAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": "admin endpoints disabled: set server.admin_key in config"})
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if key != adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
