package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/remedigraph"
)

// GraphHandler serves graph statistics and link scores
type GraphHandler struct {
	engine *remedigraph.Engine
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(engine *remedigraph.Engine) *GraphHandler {
	return &GraphHandler{engine: engine}
}

// Stats handles GET /graph/stats
func (h *GraphHandler) Stats(c *gin.Context) {
	stats, err := h.engine.GraphStats()
	if err != nil {
		errorResponse(c, http.StatusServiceUnavailable, "not_initialized", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// LinkScore handles GET /link-score?drug=<id>&disease=<id>
func (h *GraphHandler) LinkScore(c *gin.Context) {
	drugID := c.Query("drug")
	diseaseID := c.Query("disease")
	if drugID == "" || diseaseID == "" {
		errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("drug and disease query parameters are required"))
		return
	}

	scores, err := h.engine.LinkPredictionScore(drugID, diseaseID)
	if err != nil {
		errorResponse(c, http.StatusServiceUnavailable, "not_initialized", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"drug_id":    drugID,
		"disease_id": diseaseID,
		"scores":     scores,
	})
}
