package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(optional bool) *gin.Engine {
	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(optional), func(c *gin.Context) {
		c.String(http.StatusOK, ViewerID(c))
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_Strict(t *testing.T) {
	r := newAuthRouter(false)

	token, err := utils.GenerateToken("viewer-1", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "/whoami", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "viewer-1", w.Body.String())

	w = doGet(r, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/whoami", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_Optional(t *testing.T) {
	r := newAuthRouter(true)

	w := doGet(r, "/whoami", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = doGet(r, "/whoami", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))
}

func TestGetClientIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", getClientIP(c))

	c.Request.Header.Set("X-Real-IP", "198.51.100.3")
	assert.Equal(t, "198.51.100.3", getClientIP(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}

func TestGetClientIP_IgnoresUntrustedForwarding(t *testing.T) {
	c, r := gin.CreateTestContext(httptest.NewRecorder())
	require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.7:5555"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "192.0.2.7", getClientIP(c))

	c.Request.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "203.0.113.9", getClientIP(c))
}
