package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tutorhub/config"
	"tutorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func namespaceRouter(required bool) *gin.Engine {
	r := gin.New()
	r.Use(TutorNamespaceMiddleware(required, "default"))
	r.GET("/ns", func(c *gin.Context) {
		c.String(http.StatusOK, Namespace(c, "unset"))
	})
	return r
}

func doGet(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ns", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNamespaceDefaultsWithoutToken(t *testing.T) {
	rec := doGet(namespaceRouter(false), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "default", rec.Body.String())
}

func TestNamespaceRequiredWithoutToken(t *testing.T) {
	rec := doGet(namespaceRouter(true), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNamespaceFromToken(t *testing.T) {
	config.AppConfig.JWTSecret = "middleware-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = "" })

	token, err := utils.GenerateToken("tutor-7", time.Hour)
	require.NoError(t, err)

	rec := doGet(namespaceRouter(true), map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tutor-7", rec.Body.String())

	rec = doGet(namespaceRouter(false), map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGet(namespaceRouter(false), map[string]string{"Authorization": "Token " + token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/ns", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hdr := map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}
	assert.Equal(t, http.StatusNoContent, doGet(r, hdr).Code)
	assert.Equal(t, http.StatusNoContent, doGet(r, hdr).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, hdr).Code)

	// A different client has its own bucket.
	other := map[string]string{"X-Real-IP": "198.51.100.4"}
	assert.Equal(t, http.StatusNoContent, doGet(r, other).Code)
}
