package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"faqmatch/internal/store"
	"faqmatch/internal/tui"
)

// NewTUICmd creates the tui command.
func NewTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Query the trained model interactively",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	svc, closeTok, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeTok()

	corpus := store.NewCorpusFile(cfg.Corpus.Path, cfg.Corpus.QuestionCol, cfg.Corpus.AnswerCol)
	pairs, err := corpus.Load()
	if err != nil {
		return err
	}

	m := tui.New(svc, len(pairs))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}
