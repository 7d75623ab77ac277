package status

import (
	"bufio"
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/arcanusdsp/server/config"
	"go.uber.org/zap"
)

// UnknownVersion is reported when version.info has no client version.
const UnknownVersion = "Unknown"

const versionKey = "CLIENT_VER:"

// Checker reports on the darkstar game server sharing the database.
type Checker struct {
	cfg     config.DarkstarConfig
	timeout time.Duration
	logger  *zap.Logger
}

func NewChecker(cfg config.DarkstarConfig, logger *zap.Logger) *Checker {
	return &Checker{cfg: cfg, timeout: 3 * time.Second, logger: logger}
}

// Online reports whether the login server accepts TCP connections.
func (c *Checker) Online(ctx context.Context) bool {
	if c.cfg.Host == "" || c.cfg.Port == 0 {
		return false
	}
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port)))
	if err != nil {
		c.logger.Debug("server status probe failed", zap.Error(err))
		return false
	}
	_ = conn.Close()
	return true
}

// ClientVersion reads the required client version from version.info in
// the darkstar install directory. ok is false when the file or the key
// is missing.
func (c *Checker) ClientVersion() (version string, ok bool) {
	if c.cfg.Path == "" {
		return UnknownVersion, false
	}
	data, err := os.ReadFile(filepath.Join(c.cfg.Path, "version.info"))
	if err != nil {
		c.logger.Warn("read version.info failed", zap.Error(err))
		return UnknownVersion, false
	}
	if v := parseClientVersion(data); v != "" {
		return v, true
	}
	return UnknownVersion, false
}

func parseClientVersion(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, versionKey); i >= 0 {
			return strings.TrimSpace(line[i+len(versionKey):])
		}
	}
	return ""
}
