package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/darkstar"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// lookupKey builds the result cache key of a by-id lookup. Admin views
// get their own slot since they carry more fields.
func lookupKey(kind string, id int64, isAdmin bool) string {
	if isAdmin {
		return fmt.Sprintf("%s-%dtrue", kind, id)
	}
	return fmt.Sprintf("%s-%d", kind, id)
}

// searchByName answers a ?name= search: 400 with an empty list when the
// name is missing or rejected.
func searchByName[T any](c *gin.Context, fn func(name string) ([]T, error)) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, []T{})
		return
	}
	res, err := fn(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, []T{})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ItemHandler serves the item tool.
type ItemHandler struct {
	items   *darkstar.Items
	results *cache.Results
	ttl     time.Duration
	logger  *zap.Logger
}

func NewItemHandler(items *darkstar.Items, results *cache.Results, ttl time.Duration, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{items: items, results: results, ttl: ttl, logger: logger}
}

// Search handles GET /ajax/items?name=.
func (h *ItemHandler) Search(c *gin.Context) {
	searchByName(c, func(name string) ([]darkstar.ItemName, error) {
		return h.items.ByName(c.Request.Context(), name)
	})
}

// Get handles GET /ajax/item?id=.
func (h *ItemHandler) Get(c *gin.Context) {
	id := parseID(c.Query("id"))
	if id == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	isAdmin := mw.IsAdmin(c)
	ctx := c.Request.Context()
	item, err := cache.Remember(ctx, h.results, lookupKey("item", id, isAdmin), h.ttl, func() (*darkstar.Item, error) {
		return h.items.ByID(ctx, int(id), isAdmin)
	})
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// MonsterHandler serves the monster tool.
type MonsterHandler struct {
	monsters *darkstar.Monsters
	results  *cache.Results
	ttl      time.Duration
	logger   *zap.Logger
}

func NewMonsterHandler(monsters *darkstar.Monsters, results *cache.Results, ttl time.Duration, logger *zap.Logger) *MonsterHandler {
	return &MonsterHandler{monsters: monsters, results: results, ttl: ttl, logger: logger}
}

// Search handles GET /ajax/monsters?name=.
func (h *MonsterHandler) Search(c *gin.Context) {
	searchByName(c, func(name string) ([]darkstar.MonsterName, error) {
		return h.monsters.ByName(c.Request.Context(), name)
	})
}

// Get handles GET /ajax/monster?id=. Blocked monsters come back as a
// decoy for non-admins, never as an error.
func (h *MonsterHandler) Get(c *gin.Context) {
	id := parseID(c.Query("id"))
	if id == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	isAdmin := mw.IsAdmin(c)
	ctx := c.Request.Context()
	mob, err := cache.Remember(ctx, h.results, lookupKey("monster", id, isAdmin), h.ttl, func() (*darkstar.Monster, error) {
		return h.monsters.ByID(ctx, id, isAdmin)
	})
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mob)
}

// BcnmHandler serves the BCNM tool.
type BcnmHandler struct {
	bcnms   *darkstar.Bcnms
	results *cache.Results
	ttl     time.Duration
	logger  *zap.Logger
}

func NewBcnmHandler(bcnms *darkstar.Bcnms, results *cache.Results, ttl time.Duration, logger *zap.Logger) *BcnmHandler {
	return &BcnmHandler{bcnms: bcnms, results: results, ttl: ttl, logger: logger}
}

// List handles GET /ajax/bcnms.
func (h *BcnmHandler) List(c *gin.Context) {
	isAdmin := mw.IsAdmin(c)
	key := "bcnmlist"
	if isAdmin {
		key = "bcnmlist-admin"
	}
	ctx := c.Request.Context()
	list, err := cache.Remember(ctx, h.results, key, h.ttl, func() ([]darkstar.BcnmSummary, error) {
		return h.bcnms.List(ctx, isAdmin)
	})
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /ajax/bcnm?id=.
func (h *BcnmHandler) Get(c *gin.Context) {
	id := parseID(c.Query("id"))
	if id == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	isAdmin := mw.IsAdmin(c)
	ctx := c.Request.Context()
	bcnm, err := cache.Remember(ctx, h.results, lookupKey("bcnm", id, isAdmin), h.ttl, func() (*darkstar.Bcnm, error) {
		return h.bcnms.ByID(ctx, int(id), isAdmin)
	})
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bcnm)
}

// SpellHandler serves the blue magic tool. Its lookups are not cached.
type SpellHandler struct {
	spells *darkstar.Spells
	logger *zap.Logger
}

func NewSpellHandler(spells *darkstar.Spells, logger *zap.Logger) *SpellHandler {
	return &SpellHandler{spells: spells, logger: logger}
}

// List handles GET /ajax/bluespells.
func (h *SpellHandler) List(c *gin.Context) {
	spells, err := h.spells.BlueSpells(c.Request.Context())
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, spells)
}

// Get handles GET /ajax/bluespell?id=.
func (h *SpellHandler) Get(c *gin.Context) {
	id := parseID(c.Query("id"))
	if id == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	sources, err := h.spells.BlueSpellByID(c.Request.Context(), int(id))
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sources)
}
