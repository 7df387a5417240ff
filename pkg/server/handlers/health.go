// Package handlers contains the gin handlers of the HTTP API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/server/dto"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	engine *remedigraph.Engine
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(engine *remedigraph.Engine) *HealthHandler {
	return &HealthHandler{engine: engine}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := h.engine.HealthCheck()
	if !status.Healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func errorResponse(c *gin.Context, code int, kind string, err error) {
	c.JSON(code, dto.ErrorResponse{Error: kind, Message: err.Error()})
}
