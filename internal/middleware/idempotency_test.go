package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobtrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	build := func(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
		t.Helper()
		rdb, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST("/thing", func(c *gin.Context) {
			c.Set("user_id", "u1")
			c.Next()
		}, middleware.Idempotency(rdb), handler)
		return r, mock
	}

	created := func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	}
	cacheKey := fmt.Sprintf("idemp:%s:%s:%s", "/thing", "u1", "abc")
	lockKey := cacheKey + ":lock"

	post := func(r *gin.Engine, key string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/thing", nil)
		if key != "" {
			req.Header.Set("Idempotency-Key", key)
		}
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("no key passes straight through", func(t *testing.T) {
		r, _ := build(t, created)
		w := post(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("cached key replays the stored response", func(t *testing.T) {
		r, mock := build(t, created)
		mock.ExpectGet(cacheKey).SetVal(`{"id":"cached-id"}`)

		w := post(r, "abc")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cached-id")
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		r, mock := build(t, created)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := post(r, "abc")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
	})

	t.Run("fresh key caches the response and releases the lock", func(t *testing.T) {
		r, mock := build(t, created)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"ok":true}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retry after completion replays without re-running the create", func(t *testing.T) {
		hits := 0
		r, mock := build(t, func(c *gin.Context) {
			hits++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, []byte(`{"ok":true}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)
		mock.ExpectGet(cacheKey).SetVal(`{"ok":true}`)

		first := post(r, "abc")
		second := post(r, "abc")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Contains(t, second.Body.String(), `"ok":true`)
		assert.Equal(t, 1, hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed create releases the lock without caching", func(t *testing.T) {
		r, mock := build(t, func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		})

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		w := post(r, "abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
