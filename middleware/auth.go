package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/config"
	"github.com/arcanusdsp/server/darkstar"
	"github.com/arcanusdsp/server/model"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserKey      = "user"
	sessionIDKey = "session_id"

	flashTTL = 10 * time.Minute
)

// Flash kinds.
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

var errSessionTaken = errors.New("session id already in use")

// AccountLoader reads the current state of an account.
type AccountLoader interface {
	ByID(ctx context.Context, accID int64) (*model.Account, error)
}

// Sessions maps session ids to account ids and keeps one-shot flash
// messages in the cache, keyed by a session id carried in a signed cookie.
// The account itself is read again on every request.
type Sessions struct {
	sec      config.SecurityConfig
	c        cache.Cache
	accounts AccountLoader
	logger   *zap.Logger
}

func NewSessions(sec config.SecurityConfig, c cache.Cache, accounts AccountLoader, logger *zap.Logger) *Sessions {
	return &Sessions{sec: sec, c: c, accounts: accounts, logger: logger}
}

func sessionKey(id string) string { return "session:" + id }
func flashKey(id string) string   { return "flash:" + id }

// Load resolves the session cookie and sets the account on the context.
// Requests without a valid session continue as anonymous visitors.
func (s *Sessions) Load() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, err := ctx.Cookie(s.sec.CookieName)
		if err != nil || raw == "" {
			ctx.Next()
			return
		}
		claims, err := ParseToken(raw, s.sec.JWTSecret)
		if err != nil {
			s.clearCookie(ctx)
			ctx.Next()
			return
		}
		ctx.Set(sessionIDKey, claims.SessionID)

		if claims.AccountID != 0 {
			if acc := s.resolve(ctx, claims); acc != nil {
				ctx.Set(UserKey, acc)
			}
		}
		ctx.Next()
	}
}

// resolve returns the live account of a logged-in session. Sessions of
// banned or deleted accounts are ended.
func (s *Sessions) resolve(ctx *gin.Context, claims *Claims) *model.Account {
	cctx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	key := sessionKey(claims.SessionID)
	val, err := s.c.Get(cctx, key)
	if err != nil {
		if !cache.IsNotFound(err) {
			s.logger.Warn("session lookup failed", zap.Error(err))
		}
		return nil
	}
	accID, err := strconv.ParseInt(val, 10, 64)
	if err != nil || accID != claims.AccountID {
		return nil
	}

	acc, err := s.accounts.ByID(cctx, accID)
	switch {
	case errors.Is(err, darkstar.ErrNotFound):
	case err != nil:
		s.logger.Warn("session account lookup failed", zap.Int64("accid", accID), zap.Error(err))
		return nil
	case !acc.Banned():
		return acc
	}

	s.logger.Info("session ended", zap.Int64("accid", accID), zap.String("session", claims.SessionID))
	if err := s.c.Del(cctx, key); err != nil {
		s.logger.Warn("session delete failed", zap.Error(err))
	}
	_ = s.issue(ctx, claims.SessionID, 0)
	return nil
}

// RequireUser redirects anonymous visitors to the login page.
func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if GetUser(ctx) == nil {
			ctx.Redirect(http.StatusFound, "/account/login")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// Login starts a fresh session for acc, replacing any previous one.
func (s *Sessions) Login(ctx *gin.Context, acc *model.Account) error {
	if id := sessionID(ctx); id != "" {
		_ = s.c.Del(ctx.Request.Context(), sessionKey(id))
	}
	id := uuid.NewString()
	ok, err := s.c.SetNX(ctx.Request.Context(), sessionKey(id), strconv.FormatInt(acc.ID, 10), s.sec.JWTTTLH)
	if err != nil {
		return err
	}
	if !ok {
		return errSessionTaken
	}
	if err := s.issue(ctx, id, acc.ID); err != nil {
		return err
	}
	ctx.Set(UserKey, acc)
	return nil
}

// Refresh puts the updated acc on the request and renews the current
// session for another full lifetime.
func (s *Sessions) Refresh(ctx *gin.Context, acc *model.Account) error {
	id := sessionID(ctx)
	if id == "" || GetUser(ctx) == nil {
		return s.Login(ctx, acc)
	}
	if err := s.c.Expire(ctx.Request.Context(), sessionKey(id), s.sec.JWTTTLH); err != nil {
		return err
	}
	if err := s.issue(ctx, id, acc.ID); err != nil {
		return err
	}
	ctx.Set(UserKey, acc)
	return nil
}

// Logout ends the current session. Pending flashes are kept so the next
// page can still show them.
func (s *Sessions) Logout(ctx *gin.Context) {
	if id := sessionID(ctx); id != "" {
		if err := s.c.Del(ctx.Request.Context(), sessionKey(id)); err != nil {
			s.logger.Warn("session delete failed", zap.Error(err))
		}
		_ = s.issue(ctx, id, 0)
	}
	ctx.Set(UserKey, (*model.Account)(nil))
}

// Flash queues a message for the next page rendered in this session,
// opening a visitor session when there is none yet.
func (s *Sessions) Flash(ctx *gin.Context, kind, msg string) {
	id := sessionID(ctx)
	if id == "" {
		id = uuid.NewString()
		if err := s.issue(ctx, id, 0); err != nil {
			s.logger.Warn("visitor session failed", zap.Error(err))
			return
		}
	}
	flashes := s.peek(ctx.Request.Context(), id)
	flashes[kind] = append(flashes[kind], msg)
	raw, _ := json.Marshal(flashes)
	if err := s.c.Set(ctx.Request.Context(), flashKey(id), string(raw), flashTTL); err != nil {
		s.logger.Warn("flash store failed", zap.Error(err))
	}
}

// Flashes returns and clears the queued messages, grouped by kind.
func (s *Sessions) Flashes(ctx *gin.Context) map[string][]string {
	id := sessionID(ctx)
	if id == "" {
		return map[string][]string{}
	}
	flashes := s.peek(ctx.Request.Context(), id)
	if len(flashes) > 0 {
		_ = s.c.Del(ctx.Request.Context(), flashKey(id))
	}
	return flashes
}

func (s *Sessions) peek(ctx context.Context, id string) map[string][]string {
	flashes := map[string][]string{}
	if ok, err := s.c.Exists(ctx, flashKey(id)); err != nil || !ok {
		return flashes
	}
	if raw, err := s.c.Get(ctx, flashKey(id)); err == nil {
		_ = json.Unmarshal([]byte(raw), &flashes)
	}
	return flashes
}

func (s *Sessions) issue(ctx *gin.Context, id string, accountID int64) error {
	tok, err := GenerateToken(id, accountID, s.sec.JWTSecret, s.sec.JWTTTLH)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.sec.CookieName, tok, int(s.sec.JWTTTLH.Seconds()), "/", "", s.sec.CookieSecure, true)
	ctx.Set(sessionIDKey, id)
	return nil
}

func (s *Sessions) clearCookie(ctx *gin.Context) {
	ctx.SetCookie(s.sec.CookieName, "", -1, "/", "", s.sec.CookieSecure, true)
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(sessionIDKey)
}

// GetUser returns the logged-in account, or nil.
func GetUser(c *gin.Context) *model.Account {
	if v, ok := c.Get(UserKey); ok {
		acc, _ := v.(*model.Account)
		return acc
	}
	return nil
}

// IsAdmin reports whether the logged-in account may see admin-only data.
func IsAdmin(c *gin.Context) bool {
	return GetUser(c).IsAdmin()
}
