package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per key, refilled so that limit
// requests fit in window.
type RateLimiter struct {
	limit    int
	window   time.Duration
	limiters map[string]*visitor
	// idle keys are swept at most once per window
	nextSweep time.Time
	mu        sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:    limit,
		window:   window,
		limiters: make(map[string]*visitor),
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.allowAt(key, time.Now())
}

func (rl *RateLimiter) allowAt(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(rl.window/time.Duration(rl.limit)), rl.limit)}
		rl.limiters[key] = v
	}
	v.lastSeen = now
	if now.After(rl.nextSweep) {
		rl.evict(now)
		rl.nextSweep = now.Add(rl.window)
	}
	return v.limiter.AllowN(now, 1)
}

// evict drops keys idle for longer than two windows.
func (rl *RateLimiter) evict(now time.Time) {
	for key, v := range rl.limiters {
		if now.Sub(v.lastSeen) > 2*rl.window {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) Window() time.Duration {
	return rl.window
}

func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": limiter.Window().Seconds(),
			})
			return
		}
		c.Next()
	}
}
