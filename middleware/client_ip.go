package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the originating client address for rate-limit keying,
// preferring proxy headers over the socket peer.
func getClientIP(c *gin.Context) string {
	// X-Forwarded-For lists hops client-first; X-Real-IP carries a single
	// address. Both are taken at face value behind the reverse proxy.
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		if v := c.GetHeader(header); v != "" {
			if first := strings.TrimSpace(strings.Split(v, ",")[0]); first != "" {
				return first
			}
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
