package remedigraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soundprediction/remedigraph/pkg/config"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank <disease>",
	Short: "Rank repurposing candidates for a disease",
	Long: `Rank every candidate drug for the given disease query and print the
top k, ordered by fused text and graph score.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

var (
	rankTopK int
	rankJSON bool
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().IntVarP(&rankTopK, "top", "k", 10, "Number of candidates to return")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the full result as JSON")
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine, embedderClient, err := initializeEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer embedderClient.Close()

	candidates, err := engine.Rank(cmd.Context(), args[0], rankTopK)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	if rankJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	}

	if len(candidates) == 0 {
		fmt.Printf("No candidates found for %q\n", args[0])
		return nil
	}

	fmt.Printf("Top candidates for %s:\n", candidates[0].TargetDiseaseName)
	for i, c := range candidates {
		fmt.Printf("%2d. %-20s score=%.4f (text=%.4f graph=%.4f norm=%.4f)\n",
			i+1, c.DrugName, c.Score, c.TextScore, c.GraphScore, c.NormalizedScore)
	}
	return nil
}
