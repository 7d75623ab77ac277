package status

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanusdsp/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOnline(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	c := NewChecker(config.DarkstarConfig{Host: "127.0.0.1", Port: port}, zap.NewNop())
	assert.True(t, c.Online(context.Background()))

	require.NoError(t, ln.Close())
	assert.False(t, c.Online(context.Background()))

	assert.False(t, NewChecker(config.DarkstarConfig{}, zap.NewNop()).Online(context.Background()))
}

func TestClientVersion(t *testing.T) {
	dir := t.TempDir()
	c := NewChecker(config.DarkstarConfig{Path: dir}, zap.NewNop())

	v, ok := c.ClientVersion()
	assert.False(t, ok, "missing file")
	assert.Equal(t, UnknownVersion, v)

	body := "# darkstar\r\nCLIENT_VER: 30160407_0\r\nVER_LOCK: 1\r\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.info"), []byte(body), 0o600))
	v, ok = c.ClientVersion()
	assert.True(t, ok)
	assert.Equal(t, "30160407_0", v)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "version.info"), []byte("VER_LOCK: 1\n"), 0o600))
	v, ok = c.ClientVersion()
	assert.False(t, ok)
	assert.Equal(t, UnknownVersion, v)
}
