package commands

import (
	"github.com/spf13/cobra"
)

var cfgPath string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faqmatch",
		Short: "TF-IDF FAQ matcher",
		Long: `faqmatch retrieves the stored FAQ entries most similar to a free-text
question, using a TF-IDF vector space model and cosine similarity.

Train once over the question/answer corpus, then predict against the
persisted model as often as needed.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (default ./config.yaml, then ~/.config/faqmatch/config.yaml)")

	cmd.AddCommand(NewTrainCmd())
	cmd.AddCommand(NewPredictCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewTUICmd())

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
