package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IPWhitelist only lets through clients whose address is listed, either
// as a plain IP or a CIDR range. An empty list allows everyone. Entries
// that parse as neither are logged and skipped.
func IPWhitelist(entries []string, logger *zap.Logger) gin.HandlerFunc {
	var nets []*net.IPNet
	for _, e := range entries {
		if _, n, err := net.ParseCIDR(e); err == nil {
			nets = append(nets, n)
			continue
		}
		if ip := net.ParseIP(e); ip != nil {
			bits := 8 * net.IPv4len
			if ip.To4() == nil {
				bits = 8 * net.IPv6len
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		logger.Warn("ignoring malformed whitelist entry", zap.String("entry", e))
	}

	return func(c *gin.Context) {
		if len(entries) == 0 {
			c.Next()
			return
		}
		ip := net.ParseIP(c.ClientIP())
		for _, n := range nets {
			if ip != nil && n.Contains(ip) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}
