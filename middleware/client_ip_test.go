package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ipContext(remoteAddr string, headers map[string]string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := ipContext("10.0.0.1:4321", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
		"X-Real-IP":       "198.51.100.9",
	})
	assert.Equal(t, "203.0.113.7", getClientIP(c))
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	c := ipContext("10.0.0.1:4321", map[string]string{
		"X-Real-IP": "198.51.100.9",
	})
	assert.Equal(t, "198.51.100.9", getClientIP(c))
}

func TestGetClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := ipContext("192.0.2.4:55555", nil)
	assert.Equal(t, "192.0.2.4", getClientIP(c))
}
