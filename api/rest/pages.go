package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arcanusdsp/server/darkstar"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/model"
	"github.com/arcanusdsp/server/plugin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Menu names shared by the plugins.
const (
	MenuMain       = "main"
	MenuRightGuest = "main-right-guest"
	MenuRightUser  = "main-right-user"
)

// Meta is the per-page title and description.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Site struct {
	Title string `json:"title"`
	Meta  Meta   `json:"meta"`
}

// Page is the model every site page is rendered with.
type Page struct {
	Site  Site                   `json:"site"`
	Menus map[string]plugin.Menu `json:"menus"`
	Flash map[string][]string    `json:"flash"`
	User  *model.Account         `json:"user"`
	Data  gin.H                  `json:"data,omitempty"`
}

// Pages renders site pages through the loaded HTML templates, or as JSON
// page models when the site runs without templates.
type Pages struct {
	menus    *plugin.Menus
	sessions *mw.Sessions
	title    string
	html     bool
}

func NewPages(menus *plugin.Menus, sessions *mw.Sessions, title string, html bool) *Pages {
	return &Pages{menus: menus, sessions: sessions, title: title, html: html}
}

// Render answers 200 with the named template.
func (p *Pages) Render(c *gin.Context, tmpl string, meta Meta, data gin.H) {
	page := p.model(c, meta, data)
	if p.html {
		c.HTML(http.StatusOK, tmpl+".html", page)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (p *Pages) model(c *gin.Context, meta Meta, data gin.H) Page {
	user := mw.GetUser(c)
	right := MenuRightGuest
	if user != nil {
		right = MenuRightUser
	}
	menus := make(map[string]plugin.Menu, 2)
	for _, name := range []string{MenuMain, right} {
		if m, ok := p.menus.Menu(name); ok {
			menus[name] = m
		}
	}
	if meta.Title != "" {
		meta.Title += " - " + p.title
	} else {
		meta.Title = p.title
	}
	return Page{
		Site:  Site{Title: p.title, Meta: meta},
		Menus: menus,
		Flash: p.sessions.Flashes(c),
		User:  user,
		Data:  data,
	}
}

// FlashRedirect queues a flash message and redirects.
func (p *Pages) FlashRedirect(c *gin.Context, kind, msg, location string) {
	p.sessions.Flash(c, kind, msg)
	c.Redirect(http.StatusFound, location)
}

// parseID reads a positive id, returning 0 for anything else.
func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// lookupFailed answers 400 with a message that never carries the store's
// own error text.
func lookupFailed(c *gin.Context, logger *zap.Logger, err error) {
	msg := "internal error"
	var ce *darkstar.ComposeError
	switch {
	case errors.As(err, &ce):
		msg = ce.Error()
	case errors.Is(err, darkstar.ErrNotFound):
		msg = "not found"
	case errors.Is(err, darkstar.ErrValidation):
		msg = "invalid request"
	}
	if !errors.Is(err, darkstar.ErrNotFound) && !errors.Is(err, darkstar.ErrValidation) {
		cause := err
		if ce != nil && ce.Err != nil {
			cause = ce.Err
		}
		logger.Warn("lookup failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", mw.GetTraceID(c)),
			zap.Error(cause),
		)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
