package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/darkstar"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CharacterHandler serves the character lookups and the online list.
type CharacterHandler struct {
	chars   *darkstar.Characters
	results *cache.Results
	hooks   *hook.Center
	ttl     time.Duration
	logger  *zap.Logger
}

func NewCharacterHandler(chars *darkstar.Characters, results *cache.Results, hooks *hook.Center, ttl time.Duration, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{chars: chars, results: results, hooks: hooks, ttl: ttl, logger: logger}
}

func profileKey(charID int64, isAdmin bool) string {
	if isAdmin {
		return fmt.Sprintf("character-profile-%d-admin", charID)
	}
	return fmt.Sprintf("character-profile-%d", charID)
}

// Search handles GET /ajax/characters?name=.
func (h *CharacterHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, []darkstar.CharacterName{})
		return
	}
	chars, err := h.chars.ByName(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusBadRequest, []darkstar.CharacterName{})
		return
	}
	c.JSON(http.StatusOK, chars)
}

// Get handles GET /ajax/character?id=.
func (h *CharacterHandler) Get(c *gin.Context) {
	charID := parseID(c.Query("id"))
	if charID == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	isAdmin := mw.IsAdmin(c)
	ctx := c.Request.Context()
	profile, err := cache.Remember(ctx, h.results, profileKey(charID, isAdmin), h.ttl, func() (*darkstar.CharacterProfile, error) {
		return h.chars.ByID(ctx, charID, isAdmin)
	})
	if err != nil {
		lookupFailed(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Online handles GET /ajax/onlinecharacters.
func (h *CharacterHandler) Online(c *gin.Context) {
	chars, unique, err := h.chars.Online(c.Request.Context())
	if err != nil {
		h.logger.Warn("online characters failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"unique": 0, "characters": []darkstar.OnlineCharacter{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unique": unique, "characters": chars})
}

// Unstuck handles GET /ajax/unstuck?charid=. Only the owning account may
// move a character home.
func (h *CharacterHandler) Unstuck(c *gin.Context) {
	user := mw.GetUser(c)
	if user == nil || user.ID == 0 {
		c.JSON(http.StatusUnauthorized, false)
		return
	}
	charID := parseID(c.Query("charid"))
	if charID == 0 {
		c.JSON(http.StatusBadRequest, false)
		return
	}
	ctx := c.Request.Context()
	if err := h.chars.Unstuck(ctx, user.ID, charID); err != nil {
		h.logger.Info("unstuck refused",
			zap.Int64("account_id", user.ID),
			zap.Int64("char_id", charID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, false)
		return
	}
	h.results.Forget(ctx, profileKey(charID, false), profileKey(charID, true))
	_, _ = h.hooks.Trigger(ctx, hook.AfterUnstuck, hook.AccountEvent{
		TraceID:   mw.GetTraceID(c),
		AccountID: user.ID,
		CharID:    charID,
		IP:        c.ClientIP(),
	})
	c.JSON(http.StatusOK, true)
}
