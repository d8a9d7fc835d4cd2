package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTrainCmd creates the train command.
func NewTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Rebuild the model from the corpus",
		Long: `Rebuild the TF-IDF model from the full question/answer corpus and
replace the persisted model and token tables. The model is always rebuilt
from scratch; there is no incremental update.`,
		Args: cobra.NoArgs,
		RunE: runTrain,
	}
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	svc, closeTok, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeTok()

	res, err := svc.Train()
	if err != nil {
		return fmt.Errorf("training: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Trained on %d documents (%d terms)\n", res.Documents, res.Vocabulary)
	return nil
}
