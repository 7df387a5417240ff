package logger_test

import (
	"log/slog"

	"github.com/soundprediction/remedigraph/pkg/logger"
)

func ExampleNewDefaultLogger() {
	// Create a logger with default settings
	log := logger.NewDefaultLogger(slog.LevelDebug)

	// Log different levels
	log.Debug("This is a debug message")
	log.Info("This is an info message")
	log.Warn("This is a warning message")
	log.Error("This is an error message")
}

func ExampleNew() {
	log := logger.New(nil, "info", "json")

	// Log with attributes
	log.Info("ranking request", "disease", "type 2 diabetes", "k", 10)
	log.Warn("weights unchanged", "text_weight", 0, "graph_weight", 0)
}
