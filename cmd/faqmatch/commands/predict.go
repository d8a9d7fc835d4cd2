package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var predictFormat string

// NewPredictCmd creates the predict command.
func NewPredictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict <query>",
		Short: "Match a query against the trained model",
		Long: `Match a free-text question against the persisted model and print every
stored question scoring above the similarity threshold, best first.

Examples:
  faqmatch predict "what are your opening hours"
  faqmatch predict --format json "return policy"`,
		Args: cobra.ExactArgs(1),
		RunE: runPredict,
	}

	cmd.Flags().StringVar(&predictFormat, "format", "table", "Output format: table or json")

	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	svc, closeTok, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeTok()

	res, err := svc.Predict(args[0])
	if err != nil {
		return fmt.Errorf("predicting: %w", err)
	}

	if predictFormat == "json" {
		jsonData, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(res.Matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No match above threshold %.2f for: %s\n", cfg.Matcher.Threshold, res.Query)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tID\tQUESTION\tANSWER\n")
	fmt.Fprintf(w, "-----\t--\t--------\t------\n")
	for _, m := range res.Matches {
		fmt.Fprintf(w, "%.3f\t%d\t%s\t%s\n", m.Score, m.ID, truncate(m.Question, 40), truncate(m.Answer, 60))
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d match(es)\n", len(res.Matches))
	return nil
}
