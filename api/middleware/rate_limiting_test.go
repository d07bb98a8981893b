package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(config RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(time.Hour)
	router := gin.New()
	router.POST("/api/auth/login", limiter.LoginRateLimitMiddleware(config), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func hit(router *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterMaxRequests(t *testing.T) {
	router := newLimitedRouter(RateLimitConfig{
		MaxRequests:   2,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	})

	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "10.0.0.1"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	router := newLimitedRouter(RateLimitConfig{
		MaxRequests:   1,
		TimeWindow:    time.Minute,
		BlockDuration: time.Minute,
	})

	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit(router, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit(router, "10.0.0.2"))
}

func TestRateLimitWindowExpires(t *testing.T) {
	limiter := NewRateLimiter(time.Hour)
	config := RateLimitConfig{
		MaxRequests:   1,
		TimeWindow:    10 * time.Millisecond,
		BlockDuration: time.Minute,
	}

	assert.True(t, limiter.isAllowed("k", config))
	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.isAllowed("k", config), "a fresh window must admit requests again")
}
