package handlers

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/game-reviews/backend/internal/metrics"
)

//go:embed endpoints.json
var endpointsJSON []byte

type SystemHandler struct {
	health  HealthChecker
	metrics *metrics.Metrics
}

func NewSystemHandler(health HealthChecker, m *metrics.Metrics) *SystemHandler {
	return &SystemHandler{health: health, metrics: m}
}

// GetEndpoints describes every route the API serves
func (h *SystemHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Server up and running"})
}

// Ready pings the database and publishes pool usage
func (h *SystemHandler) Ready(c *gin.Context) {
	stats := h.health.Health(c.Request.Context())
	h.metrics.UpdateDBStats(h.health.Stats())

	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}
