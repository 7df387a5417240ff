package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/remedigraph"
)

// ExplainHandler handles explanation requests
type ExplainHandler struct {
	engine *remedigraph.Engine
}

// NewExplainHandler creates a new explain handler
func NewExplainHandler(engine *remedigraph.Engine) *ExplainHandler {
	return &ExplainHandler{engine: engine}
}

// Explain handles GET /explain?drug=<id>&disease=<query>
func (h *ExplainHandler) Explain(c *gin.Context) {
	drugID := c.Query("drug")
	disease := c.Query("disease")
	if drugID == "" || disease == "" {
		errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("drug and disease query parameters are required"))
		return
	}

	explanation, err := h.engine.Explain(c.Request.Context(), drugID, disease)
	if err != nil {
		switch {
		case errors.Is(err, remedigraph.ErrNoMatchingDisease):
			errorResponse(c, http.StatusNotFound, "no_matching_disease", err)
		case errors.Is(err, remedigraph.ErrDrugNotFound):
			errorResponse(c, http.StatusNotFound, "drug_not_found", err)
		case errors.Is(err, remedigraph.ErrNotInitialized):
			errorResponse(c, http.StatusServiceUnavailable, "not_initialized", err)
		default:
			errorResponse(c, http.StatusInternalServerError, "explain_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, explanation)
}
