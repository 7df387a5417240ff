package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/server/dto"
	"github.com/soundprediction/remedigraph/pkg/types"
)

// Bounds on the k query parameter.
const (
	DefaultTopK = 10
	MaxTopK     = 50
)

// RankHandler handles ranking requests
type RankHandler struct {
	engine *remedigraph.Engine
}

// NewRankHandler creates a new rank handler
func NewRankHandler(engine *remedigraph.Engine) *RankHandler {
	return &RankHandler{engine: engine}
}

// Rank handles GET /rank?disease=<query>&k=<n>
func (h *RankHandler) Rank(c *gin.Context) {
	disease := c.Query("disease")
	if disease == "" {
		errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("disease query parameter is required"))
		return
	}

	k := DefaultTopK
	if raw := c.Query("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > MaxTopK {
			errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("k must be an integer between 1 and 50"))
			return
		}
		k = parsed
	}

	candidates, err := h.engine.Rank(c.Request.Context(), disease, k)
	if err != nil {
		if errors.Is(err, remedigraph.ErrNotInitialized) {
			errorResponse(c, http.StatusServiceUnavailable, "not_initialized", err)
			return
		}
		errorResponse(c, http.StatusInternalServerError, "rank_failed", err)
		return
	}

	resp := dto.RankResponse{
		Disease:    disease,
		K:          k,
		Candidates: candidates,
		Count:      len(candidates),
	}
	if len(candidates) == 0 {
		resp.Candidates = []types.ScoredCandidate{}
		resp.Message = "No candidates found"
	}
	c.JSON(http.StatusOK, resp)
}

// RankingStats handles GET /ranking/stats?disease=<query>
func (h *RankHandler) RankingStats(c *gin.Context) {
	disease := c.Query("disease")
	if disease == "" {
		errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("disease query parameter is required"))
		return
	}

	stats, err := h.engine.RankingStatsFor(disease)
	if err != nil {
		switch {
		case errors.Is(err, remedigraph.ErrNoMatchingDisease):
			errorResponse(c, http.StatusNotFound, "no_matching_disease", err)
		case errors.Is(err, remedigraph.ErrNotInitialized):
			errorResponse(c, http.StatusServiceUnavailable, "not_initialized", err)
		default:
			errorResponse(c, http.StatusInternalServerError, "stats_failed", err)
		}
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UpdateWeights handles POST /weights
func (h *RankHandler) UpdateWeights(c *gin.Context) {
	var req dto.WeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if err := h.engine.UpdateWeights(req.TextWeight, req.GraphWeight); err != nil {
		// Zero-sum updates keep the old weights; report them back.
		if !errors.Is(err, remedigraph.ErrZeroWeights) {
			errorResponse(c, http.StatusInternalServerError, "update_failed", err)
			return
		}
	}

	textWeight, graphWeight := h.engine.Weights()
	c.JSON(http.StatusOK, dto.WeightsResponse{
		TextWeight:  textWeight,
		GraphWeight: graphWeight,
	})
}
