// Package server exposes the ranking engine over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/soundprediction/remedigraph"
	"github.com/soundprediction/remedigraph/pkg/config"
	"github.com/soundprediction/remedigraph/pkg/server/handlers"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	router *gin.Engine
	engine *remedigraph.Engine
	server *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, engine *remedigraph.Engine) *Server {
	return &Server{
		config: cfg,
		engine: engine,
	}
}

// Setup sets up the server routes and middleware
func (s *Server) Setup() {
	// Set gin mode
	gin.SetMode(s.config.Server.Mode)

	// Create router
	s.router = gin.New()

	// Add middleware
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(requestIDMiddleware())

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

// Router returns the configured gin router.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes sets up all the routes
func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.engine)
	rankHandler := handlers.NewRankHandler(s.engine)
	explainHandler := handlers.NewExplainHandler(s.engine)
	catalogHandler := handlers.NewCatalogHandler(s.engine)
	graphHandler := handlers.NewGraphHandler(s.engine)

	// Health endpoints
	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/live", healthHandler.LivenessCheck)

	// Ranking and explanation
	s.router.GET("/rank", rankHandler.Rank)
	s.router.GET("/ranking/stats", rankHandler.RankingStats)
	s.router.POST("/weights", rankHandler.UpdateWeights)
	s.router.GET("/explain", explainHandler.Explain)

	// Catalog
	s.router.GET("/drugs", catalogHandler.ListDrugs)
	s.router.GET("/drugs/:id", catalogHandler.GetDrug)
	s.router.GET("/drugs/:id/mechanism", catalogHandler.GetDrugMechanism)
	s.router.GET("/diseases", catalogHandler.ListDiseases)
	s.router.GET("/diseases/search", catalogHandler.SearchDiseases)
	s.router.GET("/diseases/:id", catalogHandler.GetDisease)
	s.router.GET("/diseases/:id/profile", catalogHandler.GetDiseaseProfile)

	// Graph
	s.router.GET("/graph/stats", graphHandler.Stats)
	s.router.GET("/link-score", graphHandler.LinkScore)
}

// Start starts the server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
