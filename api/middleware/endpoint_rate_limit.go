package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// EndpointRateLimiter applies a separate limit per registered route.
type EndpointRateLimiter struct {
	limiters map[string]*RateLimiter
	mu       sync.RWMutex
}

func NewEndpointRateLimiter() *EndpointRateLimiter {
	return &EndpointRateLimiter{
		limiters: make(map[string]*RateLimiter),
	}
}

// AddEndpoint registers a limit for a route pattern as gin reports it in FullPath.
func (erl *EndpointRateLimiter) AddEndpoint(path string, limit int, window time.Duration) {
	erl.mu.Lock()
	defer erl.mu.Unlock()
	erl.limiters[path] = NewRateLimiter(limit, window)
}

func (erl *EndpointRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		erl.mu.RLock()
		limiter, exists := erl.limiters[c.FullPath()]
		erl.mu.RUnlock()

		if exists && !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded for this endpoint",
				"retry_after": limiter.Window().Seconds(),
			})
			return
		}

		c.Next()
	}
}
