package rest

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/arcanusdsp/server/cache"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/news"
	"github.com/arcanusdsp/server/status"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	newsTTL          = 600 * time.Second
	serverStatusTTL  = 120 * time.Second
	serverVersionTTL = 300 * time.Second
)

// StatusHandler serves the news feed and the game server status widgets.
type StatusHandler struct {
	news    *news.Service
	checker *status.Checker
	results *cache.Results
	logger  *zap.Logger
}

func NewStatusHandler(n *news.Service, checker *status.Checker, results *cache.Results, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{news: n, checker: checker, results: results, logger: logger}
}

// LatestNews handles GET /ajax/latestnews.
func (h *StatusHandler) LatestNews(c *gin.Context) {
	posts, err := cache.Remember(c.Request.Context(), h.results, "latestnews", newsTTL, func() (string, error) {
		return h.news.Posts(c.Request.Context())
	})
	if err != nil {
		c.Data(http.StatusNoContent, "application/json; charset=utf-8", []byte("[]"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(posts))
}

// ServerStatus handles GET /ajax/serverstatus.
func (h *StatusHandler) ServerStatus(c *gin.Context) {
	ctx := c.Request.Context()
	online, _ := cache.Remember(ctx, h.results, "serverstatus", serverStatusTTL, func() (bool, error) {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return h.checker.Online(pctx), nil
	})
	if !online {
		c.JSON(http.StatusNoContent, false)
		return
	}
	c.JSON(http.StatusOK, true)
}

type serverVersion struct {
	Version string `json:"version"`
	Known   bool   `json:"known"`
}

// ServerVersion handles GET /ajax/serverversion.
func (h *StatusHandler) ServerVersion(c *gin.Context) {
	v, _ := cache.Remember(c.Request.Context(), h.results, "serverversion", serverVersionTTL, func() (serverVersion, error) {
		version, ok := h.checker.ClientVersion()
		return serverVersion{Version: version, Known: ok}, nil
	})
	if !v.Known {
		c.String(http.StatusNoContent, status.UnknownVersion)
		return
	}
	c.String(http.StatusOK, v.Version)
}

// NodeVersion handles GET /ajax/nodeversion with the runtime versions.
func (h *StatusHandler) NodeVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"go":   runtime.Version(),
		"gin":  gin.Version,
		"os":   runtime.GOOS,
		"arch": runtime.GOARCH,
	})
}

// SiteHandler renders the static site pages.
type SiteHandler struct {
	pages *Pages
}

func NewSiteHandler(pages *Pages) *SiteHandler {
	return &SiteHandler{pages: pages}
}

func (h *SiteHandler) page(tmpl string, meta Meta) gin.HandlerFunc {
	return func(c *gin.Context) { h.pages.Render(c, tmpl, meta, nil) }
}

func (h *SiteHandler) Index() gin.HandlerFunc {
	return h.page("index", Meta{Title: "Index", Description: "Welcome to the private server website!"})
}

func (h *SiteHandler) Chat() gin.HandlerFunc {
	return h.page("chat", Meta{Title: "Chat (IRC)", Description: "Chat with fellow community members online!"})
}

func (h *SiteHandler) WhosOnline() gin.HandlerFunc {
	return h.page("whosonline", Meta{Title: "Whos Online", Description: "Displays a list of currently online players."})
}

func (h *SiteHandler) Donate() gin.HandlerFunc {
	return h.page("donate", Meta{Title: "Donations", Description: "Say thanks, with money!"})
}

// DBTool describes one /db lookup tool: its search page and its detail
// page keyed by :id.
type DBTool struct {
	Path         string // e.g. /items, relative to /db
	IDKey        string // page data key holding the id
	LookupTmpl   string
	LookupMeta   Meta
	DetailTmpl   string
	DetailMeta   Meta
	InvalidIDMsg string
}

// Lookup renders the tool's search page.
func (h *SiteHandler) Lookup(t DBTool) gin.HandlerFunc {
	return h.page(t.LookupTmpl, t.LookupMeta)
}

// Detail renders the tool's detail page. An id that does not parse to a
// positive number flashes an error and sends the visitor back to search.
func (h *SiteHandler) Detail(t DBTool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := parseID(c.Param("id"))
		if id == 0 {
			h.pages.FlashRedirect(c, mw.FlashError, t.InvalidIDMsg, "/db"+t.Path)
			return
		}
		h.pages.Render(c, t.DetailTmpl, t.DetailMeta, gin.H{t.IDKey: id})
	}
}
