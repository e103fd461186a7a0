package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.GET("/things", func(c *gin.Context) {
		if uid := c.Query("uid"); uid != "" {
			c.Set("user_id", uid)
		}
		c.Next()
	}, middleware.RateLimitByUser(1, 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("anonymous requests pass through", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("burst exhaustion blocks the caller", func(t *testing.T) {
		w1 := httptest.NewRecorder()
		r.ServeHTTP(w1, httptest.NewRequest(http.MethodGet, "/things?uid=u1", nil))
		w2 := httptest.NewRecorder()
		r.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/things?uid=u1", nil))

		assert.Equal(t, http.StatusOK, w1.Code)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	})
}
