package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/arcanusdsp/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newsServer(t *testing.T, body string) (*httptest.Server, *url.URL) {
	t.Helper()
	got := &url.URL{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = *r.URL
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestPosts(t *testing.T) {
	srv, got := newsServer(t, `[{"id":1,"title":"Maintenance"}]`)
	s := NewService(config.NewsConfig{
		Path:    srv.URL + "/",
		Script:  "news.php",
		ForumID: 2,
		Count:   5,
		Timeout: time.Second,
	}, zap.NewNop())

	posts, err := s.Posts(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"Maintenance"}]`, posts)

	assert.Equal(t, "/news.php", got.Path)
	assert.Equal(t, "news", got.Query().Get("a"))
	assert.Equal(t, "2", got.Query().Get("id"))
	assert.Equal(t, "5", got.Query().Get("l"))
	assert.Equal(t, srv.URL+"/", got.Query().Get("p"))
}

func TestPosts_InvalidJSON(t *testing.T) {
	srv, _ := newsServer(t, "<html>maintenance</html>")
	s := NewService(config.NewsConfig{Path: srv.URL + "/", Script: "news.php"}, zap.NewNop())

	_, err := s.Posts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "failed to obtain latest news posts", err.Error())
}

func TestPosts_Unreachable(t *testing.T) {
	srv, _ := newsServer(t, "[]")
	srv.Close()
	s := NewService(config.NewsConfig{Path: srv.URL + "/", Script: "news.php"}, zap.NewNop())

	_, err := s.Posts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestPosts_NotConfigured(t *testing.T) {
	s := NewService(config.NewsConfig{}, zap.NewNop())
	_, err := s.Posts(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "newsservice", s.Name())
}
