package remedigraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soundprediction/remedigraph/pkg/config"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print knowledge graph statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine, embedderClient, err := initializeEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer embedderClient.Close()

	stats, err := engine.GraphStats()
	if err != nil {
		return fmt.Errorf("graph stats: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
