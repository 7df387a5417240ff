package remedigraph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soundprediction/remedigraph/pkg/config"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <drug-id> <disease>",
	Short: "Explain a drug-disease candidate pair",
	Long: `Explain why a drug is a repurposing candidate for a disease: graph
paths between the two nodes, token overlap between the drug's
indications and the disease text, and any known direct evidence.`,
	Args: cobra.ExactArgs(2),
	RunE: runExplain,
}

var explainJSON bool

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "Print the full result as JSON")
}

func runExplain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	engine, embedderClient, err := initializeEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer embedderClient.Close()

	explanation, err := engine.Explain(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("explain: %w", err)
	}

	if explainJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(explanation)
	}

	fmt.Printf("%s → %s\n\n", explanation.DrugName, explanation.DiseaseName)

	if len(explanation.GraphPaths) == 0 {
		fmt.Println("Graph paths: none found")
	} else {
		fmt.Println("Graph paths:")
		for _, p := range explanation.GraphPaths {
			fmt.Printf("  %d. [%d hops] %s\n", p.PathID, p.Length, p.Explanation)
		}
	}

	fmt.Printf("\nText overlap: %d tokens (ratio %.2f)\n",
		explanation.TextOverlap.OverlapCount, explanation.TextOverlap.OverlapRatio)
	for _, t := range explanation.TextOverlap.OverlappingTokens {
		fmt.Printf("  - %s\n", t)
	}

	if explanation.Known.HasKnownEvidence {
		fmt.Printf("\nKnown evidence: %s\n", explanation.Known.Evidence)
	}
	return nil
}
