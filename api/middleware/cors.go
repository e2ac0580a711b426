package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
)

type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
}

func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", TraceIDHeader},
		ExposeHeaders: []string{TraceIDHeader},
	}
}

// CORSFromConfig falls back to the defaults for any list left empty.
func CORSFromConfig(cfg config.CORSConfig) CORSConfig {
	out := DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		out.AllowOrigins = cfg.AllowedOrigins
	}
	if len(cfg.AllowedMethods) > 0 {
		out.AllowMethods = cfg.AllowedMethods
	}
	if len(cfg.AllowedHeaders) > 0 {
		out.AllowHeaders = cfg.AllowedHeaders
	}
	if len(cfg.ExposedHeaders) > 0 {
		out.ExposeHeaders = cfg.ExposedHeaders
	}
	out.AllowCredentials = cfg.AllowCredentials
	return out
}

func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := ""
		for _, o := range cfg.AllowOrigins {
			if o == "*" && !cfg.AllowCredentials {
				allowed = "*"
				break
			}
			if o == "*" || o == origin {
				allowed = origin
				break
			}
		}

		if allowed != "" {
			c.Header("Access-Control-Allow-Origin", allowed)
		}

		c.Header("Access-Control-Allow-Methods", strings.Join(cfg.AllowMethods, ", "))
		c.Header("Access-Control-Allow-Headers", strings.Join(cfg.AllowHeaders, ", "))
		c.Header("Access-Control-Expose-Headers", strings.Join(cfg.ExposeHeaders, ", "))

		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
