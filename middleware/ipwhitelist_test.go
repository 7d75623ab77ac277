package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newWhitelistRouter(entries []string) *gin.Engine {
	r := gin.New()
	r.Use(IPWhitelist(entries, zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func whitelistGet(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestIPWhitelist_Empty_AllowsAll(t *testing.T) {
	r := newWhitelistRouter(nil)
	assert.Equal(t, http.StatusOK, whitelistGet(r, "1.2.3.4"))
}

func TestIPWhitelist_PlainIPs(t *testing.T) {
	r := newWhitelistRouter([]string{"10.0.0.1", "::1"})
	assert.Equal(t, http.StatusOK, whitelistGet(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, whitelistGet(r, "::1"))
	assert.Equal(t, http.StatusForbidden, whitelistGet(r, "10.0.0.2"))
}

func TestIPWhitelist_CIDR(t *testing.T) {
	r := newWhitelistRouter([]string{"192.168.0.0/16"})
	assert.Equal(t, http.StatusOK, whitelistGet(r, "192.168.4.20"))
	assert.Equal(t, http.StatusForbidden, whitelistGet(r, "192.169.0.1"))
}

func TestIPWhitelist_MalformedEntriesDenyEverything(t *testing.T) {
	r := newWhitelistRouter([]string{"not-an-ip"})
	assert.Equal(t, http.StatusForbidden, whitelistGet(r, "127.0.0.1"))
}
