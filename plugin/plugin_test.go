package plugin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arcanusdsp/server/plugin/hook"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeService struct {
	name string
	err  error
	init int
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Initialize(context.Context) error {
	s.init++
	return s.err
}

type fakePlugin struct {
	name string
	fn   func(h *Host) error
}

func (p fakePlugin) Name() string             { return p.name }
func (p fakePlugin) Initialize(h *Host) error { return p.fn(h) }

func newHost() *Host {
	return NewHost(gin.New(), hook.NewCenter(), zap.NewNop())
}

func TestHostLoad(t *testing.T) {
	h := newHost()
	svc := &fakeService{name: "newsservice"}

	ping := fakePlugin{name: "ping", fn: func(h *Host) error {
		_, ok := h.Service("newsservice")
		require.True(t, ok, "services initialize before plugins")
		h.RegisterRouter("ping", "/ajax", func(g *gin.RouterGroup) {
			g.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		})
		return nil
	}}
	require.NoError(t, h.Load(context.Background(), []Service{svc}, []Plugin{ping}))

	assert.Equal(t, 1, svc.init)
	assert.Equal(t, []string{"newsservice"}, h.Services())
	assert.Equal(t, []string{"ping /ajax"}, h.Mounts())

	w := httptest.NewRecorder()
	h.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ajax/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestHostLoad_ServiceFailureAborts(t *testing.T) {
	h := newHost()
	boom := errors.New("boom")
	called := false
	err := h.Load(context.Background(),
		[]Service{&fakeService{name: "darkstarservice", err: boom}},
		[]Plugin{fakePlugin{name: "p", fn: func(*Host) error { called = true; return nil }}},
	)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "darkstarservice")
	assert.False(t, called)
	assert.Empty(t, h.Services())
}

func TestMenus(t *testing.T) {
	m := NewMenus()
	m.CreateMenu("main", []MenuItem{
		{Alias: "community", Title: "Community", Children: []MenuItem{{Alias: "forums", Href: "/forums"}}},
		{Alias: "database", Title: "Database Tools"},
	}, map[string]string{"class": "nav navbar-nav navbar-left"})

	// an existing alias is left untouched
	require.NoError(t, m.AppendMenuItem("main", MenuItem{Alias: "database", Title: "Other"}))
	require.NoError(t, m.AppendMenuItems("main", []MenuItem{
		{Alias: "itemstool", Href: "/db/items", Title: "Item Tool"},
	}, "database"))
	require.NoError(t, m.AppendMenuItems("main", []MenuItem{
		{Alias: "itemstool", Href: "/elsewhere"},
		{Alias: "monsterstool", Href: "/db/monsters", Title: "Monster Tool"},
	}, "database"))
	require.NoError(t, m.AppendMenuItem("main", MenuItem{Alias: "donate", Href: "/donate"}))

	mn, ok := m.Menu("main")
	require.True(t, ok)
	require.Len(t, mn.Items, 3)
	assert.Equal(t, "Database Tools", mn.Items[1].Title)
	require.Len(t, mn.Items[1].Children, 2)
	assert.Equal(t, "/db/items", mn.Items[1].Children[0].Href)
	assert.Equal(t, "monsterstool", mn.Items[1].Children[1].Alias)
	assert.Equal(t, "donate", mn.Items[2].Alias)
	assert.Equal(t, "nav navbar-nav navbar-left", mn.Options["class"])

	// copies are detached from the registry
	mn.Items[1].Children[0].Title = "changed"
	again, _ := m.Menu("main")
	assert.Equal(t, "Item Tool", again.Items[1].Children[0].Title)
}

func TestMenus_Errors(t *testing.T) {
	m := NewMenus()
	assert.ErrorIs(t, m.AppendMenuItem("nope", MenuItem{Alias: "x"}), ErrMenuNotFound)

	m.CreateMenu("main", nil, nil)
	assert.ErrorIs(t, m.AppendMenuItems("main", []MenuItem{{Alias: "x"}}, "database"), ErrParentNotFound)

	_, ok := m.Menu("missing")
	assert.False(t, ok)
}
