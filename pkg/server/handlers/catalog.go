package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/server/dto"
	"github.com/soundprediction/remedigraph/pkg/types"
)

// CatalogHandler serves the drug and disease catalog
type CatalogHandler struct {
	engine *remedigraph.Engine
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(engine *remedigraph.Engine) *CatalogHandler {
	return &CatalogHandler{engine: engine}
}

// ListDrugs handles GET /drugs
func (h *CatalogHandler) ListDrugs(c *gin.Context) {
	drugs := h.engine.Drugs()
	if drugs == nil {
		drugs = []types.DrugRecord{}
	}
	c.JSON(http.StatusOK, dto.DrugListResponse{Drugs: drugs, Count: len(drugs)})
}

// GetDrug handles GET /drugs/:id
func (h *CatalogHandler) GetDrug(c *gin.Context) {
	drug, err := h.engine.DrugInfo(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "drug_not_found", err)
		return
	}
	c.JSON(http.StatusOK, drug)
}

// GetDrugMechanism handles GET /drugs/:id/mechanism
func (h *CatalogHandler) GetDrugMechanism(c *gin.Context) {
	mechanism, err := h.engine.DrugMechanism(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "drug_not_found", err)
		return
	}
	c.JSON(http.StatusOK, mechanism)
}

// ListDiseases handles GET /diseases
func (h *CatalogHandler) ListDiseases(c *gin.Context) {
	diseases := h.engine.Diseases()
	if diseases == nil {
		diseases = []types.DiseaseRecord{}
	}
	c.JSON(http.StatusOK, dto.DiseaseListResponse{Diseases: diseases, Count: len(diseases)})
}

// SearchDiseases handles GET /diseases/search?q=<query>
func (h *CatalogHandler) SearchDiseases(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		errorResponse(c, http.StatusBadRequest, "invalid_request", errors.New("q query parameter is required"))
		return
	}

	diseases := h.engine.SearchDiseases(query)
	if diseases == nil {
		diseases = []types.DiseaseRecord{}
	}
	c.JSON(http.StatusOK, dto.DiseaseSearchResponse{
		Query:    query,
		Diseases: diseases,
		Count:    len(diseases),
	})
}

// GetDisease handles GET /diseases/:id
func (h *CatalogHandler) GetDisease(c *gin.Context) {
	disease, err := h.engine.DiseaseInfo(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "disease_not_found", err)
		return
	}
	c.JSON(http.StatusOK, disease)
}

// GetDiseaseProfile handles GET /diseases/:id/profile
func (h *CatalogHandler) GetDiseaseProfile(c *gin.Context) {
	profile, err := h.engine.DiseaseProfile(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "disease_not_found", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
