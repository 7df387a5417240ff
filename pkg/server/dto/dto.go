// Package dto defines the request and response shapes of the HTTP API.
package dto

import "github.com/soundprediction/remedigraph/pkg/types"

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RankResponse wraps a ranking result.
type RankResponse struct {
	Disease    string                  `json:"disease"`
	K          int                     `json:"k"`
	Candidates []types.ScoredCandidate `json:"candidates"`
	Count      int                     `json:"count"`
	Message    string                  `json:"message,omitempty"`
}

// DiseaseSearchResponse wraps a disease search result.
type DiseaseSearchResponse struct {
	Query    string                `json:"query"`
	Diseases []types.DiseaseRecord `json:"diseases"`
	Count    int                   `json:"count"`
}

// DrugListResponse wraps the drug catalog.
type DrugListResponse struct {
	Drugs []types.DrugRecord `json:"drugs"`
	Count int                `json:"count"`
}

// DiseaseListResponse wraps the disease catalog.
type DiseaseListResponse struct {
	Diseases []types.DiseaseRecord `json:"diseases"`
	Count    int                   `json:"count"`
}

// WeightsRequest updates the score fusion weights.
type WeightsRequest struct {
	TextWeight  float64 `json:"text_weight"`
	GraphWeight float64 `json:"graph_weight"`
}

// WeightsResponse reports the weights in effect after an update.
type WeightsResponse struct {
	TextWeight  float64 `json:"text_weight"`
	GraphWeight float64 `json:"graph_weight"`
}
