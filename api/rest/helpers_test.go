package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arcanusdsp/server/api/rest"
	"github.com/arcanusdsp/server/cache"
	"github.com/arcanusdsp/server/config"
	"github.com/arcanusdsp/server/darkstar"
	dbsqlite "github.com/arcanusdsp/server/db/sqlite"
	mw "github.com/arcanusdsp/server/middleware"
	"github.com/arcanusdsp/server/model"
	"github.com/arcanusdsp/server/news"
	"github.com/arcanusdsp/server/plugin"
	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/arcanusdsp/server/scheduler"
	"github.com/arcanusdsp/server/status"
	"github.com/arcanusdsp/server/testutil"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testAdminKey = "admin-secret"

	zoneBastok  = 234
	zoneRonfa   = 100
	accPlayer   = 1000
	accAdmin    = 1001
	accBanned   = 1002
	charPlayer  = 21828
	charOther   = 21829
	mobRabbit   = 17187001
	mobBlocked  = 17187002
	itemOre     = 640
	itemCrystal = 4096
)

var testSec = config.SecurityConfig{
	JWTSecret:  "test-secret",
	JWTTTLH:    time.Hour,
	CookieName: "arcanus_session",
}

// testEnv is a fully wired site on an in-memory database.
type testEnv struct {
	r       *gin.Engine
	db      *gorm.DB
	results *cache.Results

	mu     sync.Mutex
	events []string
}

type envOptions struct {
	newsPath    string
	versionFile string
}

func newEnv(t *testing.T) *testEnv {
	return newEnvWith(t, envOptions{})
}

func newEnvWith(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	db := testutil.SetupTestDB(t)
	seedSite(t, db)

	c := testutil.SetupTestCache(t)
	results := cache.NewResults(c, logger)
	hooks := hook.NewCenter()
	env := &testEnv{db: db, results: results}
	for _, ev := range []string{hook.AfterLogin, hook.AfterLogout, hook.AfterEmailChange, hook.AfterPasswordChange, hook.AfterUnstuck} {
		hooks.Register(ev, 1, "test", func(_ context.Context, event string, data interface{}) (interface{}, error) {
			env.mu.Lock()
			env.events = append(env.events, event)
			env.mu.Unlock()
			return data, nil
		})
	}

	ds := darkstar.NewService(db, darkstar.Policy{
		Monsters: darkstar.NewBlocklist([]int{mobBlocked}),
	}, logger)

	darkstarDir := t.TempDir()
	if opts.versionFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(darkstarDir, "version.info"), []byte(opts.versionFile), 0o644))
	}
	checker := status.NewChecker(config.DarkstarConfig{Path: darkstarDir}, logger)
	newsSvc := news.NewService(config.NewsConfig{Path: opts.newsPath, Script: "news.php", ForumID: 2, Count: 5}, logger)

	sessions := mw.NewSessions(testSec, c, ds.Accounts, logger)
	r := gin.New()
	r.Use(mw.TraceID(), sessions.Load())

	host := plugin.NewHost(r, hooks, logger)
	pages := rest.NewPages(host.Menus, sessions, "arcanus", false)
	ttl := time.Minute
	handlers := &rest.Handlers{
		Site:       rest.NewSiteHandler(pages),
		Status:     rest.NewStatusHandler(newsSvc, checker, results, logger),
		Accounts:   rest.NewAccountHandler(ds.Accounts, ds.Characters, sessions, pages, hooks, logger),
		Characters: rest.NewCharacterHandler(ds.Characters, results, hooks, ttl, logger),
		Items:      rest.NewItemHandler(ds.Items, results, ttl, logger),
		Monsters:   rest.NewMonsterHandler(ds.Monsters, results, ttl, logger),
		Bcnms:      rest.NewBcnmHandler(ds.Bcnms, results, ttl, logger),
		Spells:     rest.NewSpellHandler(ds.Spells, logger),
	}
	require.NoError(t, host.Load(context.Background(), []plugin.Service{ds, newsSvc}, rest.Plugins(handlers)))

	sched := scheduler.New(logger)
	t.Cleanup(sched.Stop)
	sched.Every("items.reindex", time.Hour, ds.RebuildItemIndex)

	admin := rest.NewAdminHandler(ds, host, sched, logger)
	admin.Routes(r.Group("/admin", rest.AdminAuth(testAdminKey)))

	env.r = r
	return env
}

func (e *testEnv) firedEvents() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.events...)
}

// seedSite creates a player, an admin and a banned account, two
// characters, a couple of items and two rabbits (one of them blocked).
func seedSite(t *testing.T, db *gorm.DB) {
	t.Helper()
	pw := dbsqlite.MySQLPassword("hunter2")
	testutil.Seed(t, db,
		&model.Zone{ZoneID: zoneBastok, Name: "Bastok_Markets"},
		&model.Zone{ZoneID: zoneRonfa, Name: "West_Ronfaure"},
		&model.Account{ID: accPlayer, Login: "player", Password: pw, Email: "player@example.com", Status: 1, Priv: 1},
		&model.Account{ID: accAdmin, Login: "admin", Password: pw, Status: 1, Priv: 2},
		&model.Account{ID: accBanned, Login: "banned", Password: pw, Status: 2},
		&model.Char{CharID: charPlayer, AccID: accPlayer, CharName: "Alpha", PosZone: zoneRonfa, HomeZone: zoneBastok},
		&model.Char{CharID: charOther, AccID: accAdmin, CharName: "Bravo", PosZone: zoneBastok, HomeZone: zoneBastok},
		&model.CharStats{CharID: charPlayer, MJob: 1, MLvl: 75},
		&model.CharStats{CharID: charOther},
		&model.AccountSession{AccID: accPlayer, CharID: charPlayer, ClientAddr: 1},

		&model.ItemBasic{ItemID: itemOre, Name: "copper_ore", SortName: "copper_ore", StackSize: 12, AH: 44},
		&model.ItemBasic{ItemID: itemCrystal, Name: "fire_crystal", SortName: "fire_crystal", StackSize: 12, AH: 35},
		&model.MobFamily{FamilyID: 1, Family: "Rabbit", HP: 100},
		&model.MobPool{PoolID: 1, Name: "Forest_Hare", FamilyID: 1},
		&model.MobGroup{GroupID: 1, PoolID: 1, ZoneID: zoneRonfa, DropID: 5, RespawnTime: 330, MinLevel: 10, MaxLevel: 80},
		&model.MobSpawnPoint{MobID: mobRabbit, MobName: "Forest_Hare", PolutilsName: "Forest Hare", GroupID: 1, PosX: 1.5, PosY: -2, PosZ: 30},
		&model.MobSpawnPoint{MobID: mobBlocked, MobName: "Forest_Hare", PolutilsName: "Forest Hare", GroupID: 1, PosX: 4, PosY: 0, PosZ: 3},
		&model.MobDrop{DropID: 5, ItemID: itemOre, ItemRate: 100},
	)
}

// browser carries cookies between requests, like a client following a
// site session.
type browser struct {
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func (e *testEnv) browser() *browser {
	return &browser{r: e.r, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.r.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) login(t *testing.T, username string) {
	t.Helper()
	w := b.post("/account/login", url.Values{"username": {username}, "password": {"hunter2"}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/account/profile", w.Header().Get("Location"))
}

// page decodes a site page rendered as JSON.
func page(t *testing.T, w *httptest.ResponseRecorder) rest.Page {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var p rest.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}
