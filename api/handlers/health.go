package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startupErr error
	loadedAt   time.Time
}

// NewHealthHandler reports readiness from the artifact load outcome.
// startupErr is nil when both artifacts loaded.
func NewHealthHandler(startupErr error, loadedAt time.Time) *HealthHandler {
	return &HealthHandler{startupErr: startupErr, loadedAt: loadedAt}
}

type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp string            `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Health reports artifact status
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.startupErr != nil {
		checks["artifacts"] = "unhealthy: " + UnavailableDetail
		status = "unhealthy"
	} else {
		checks["artifacts"] = "loaded at " + h.loadedAt.UTC().Format(time.RFC3339)
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.startupErr != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
