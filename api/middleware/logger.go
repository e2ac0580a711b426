package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
)

// HTTPRecorder counts finished requests.
type HTTPRecorder interface {
	IncHTTPRequest(route, method string, status int)
}

func RequestLogger(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if rec != nil {
			rec.IncHTTPRequest(c.FullPath(), c.Request.Method, status)
		}

		// Query strings and form bodies are not logged; they carry measurements.
		fields := map[string]interface{}{
			"status":     status,
			"method":     c.Request.Method,
			"path":       path,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
		}

		if traceID := GetTraceID(c); traceID != "" {
			fields["trace_id"] = traceID
		}

		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := logger.WithFields(fields)

		switch {
		case status >= 500:
			entry.Error("server error")
		case status >= 400:
			entry.Warn("client error")
		default:
			entry.Info("request completed")
		}
	}
}
