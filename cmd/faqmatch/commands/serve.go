package commands

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"faqmatch/internal/httpapi"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve train/predict over HTTP",
		Long: `Serve the train and predict operations as a JSON endpoint.

Requests are POST bodies of the form
  {"mode": "train", "key": "..."}
  {"mode": "predict", "query": "...", "key": "..."}
and are rejected unless key matches the configured access key.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	accessKey := os.Getenv(cfg.Server.AccessKeyEnv)
	if accessKey == "" {
		return fmt.Errorf("access key env %s is not set", cfg.Server.AccessKeyEnv)
	}

	svc, closeTok, err := newService(cfg)
	if err != nil {
		return err
	}
	defer closeTok()

	srv := httpapi.New(svc, accessKey)
	log.Printf("faqmatch listening on %s", cfg.Server.Addr)
	return http.ListenAndServe(cfg.Server.Addr, srv.Handler())
}
