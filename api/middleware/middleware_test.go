package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingRecorder struct {
	routes []string
}

func (r *countingRecorder) IncHTTPRequest(route, method string, status int) {
	r.routes = append(r.routes, route)
}

func TestTraceID(t *testing.T) {
	r := gin.New()
	r.Use(TraceID())

	var fromCtx string
	r.GET("/", func(c *gin.Context) {
		fromCtx = logger.TraceIDFromContext(c.Request.Context())
		c.String(http.StatusOK, GetTraceID(c))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(TraceIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
		assert.Equal(t, "abc-123", fromCtx)
	})

	t.Run("mints a new id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(TraceIDHeader), 36)
		assert.Equal(t, rec.Header().Get(TraceIDHeader), fromCtx)
	})
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(2, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_SweepsIdleKeysOncePerWindow(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	rl.allowAt("a", t0)
	rl.allowAt("b", t0.Add(90*time.Second))
	assert.Len(t, rl.limiters, 2)

	// "a" is past two windows idle, but the next sweep is not due yet
	rl.allowAt("c", t0.Add(140*time.Second))
	assert.Len(t, rl.limiters, 3)
	assert.Contains(t, rl.limiters, "a")

	rl.allowAt("d", t0.Add(151*time.Second))
	assert.Len(t, rl.limiters, 3)
	assert.NotContains(t, rl.limiters, "a")
}

func TestEndpointRateLimiter(t *testing.T) {
	erl := NewEndpointRateLimiter()
	erl.AddEndpoint("/predict", 1, time.Minute)

	r := gin.New()
	r.Use(erl.Middleware())
	r.POST("/predict", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/predict", nil))
		assert.Equal(t, want, rec.Code, "request %d", i)
	}

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORS(t *testing.T) {
	cfg := CORSFromConfig(config.CORSConfig{AllowedOrigins: []string{"https://clinic.example"}})

	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://clinic.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), TraceIDHeader)
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://elsewhere.example")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(RequestSizeLimit(16))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ok")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "form-action 'self'")
}

func TestRequestLogger_RecordsRoute(t *testing.T) {
	rec := &countingRecorder{}
	r := gin.New()
	r.Use(RequestLogger(rec))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Len(t, rec.routes, 2)
	assert.Equal(t, "/health", rec.routes[0])
	assert.Equal(t, "", rec.routes[1])
}
