package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driven/api"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/tui"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/config"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

var dashAPIBaseURL string

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Launch the terminal dashboard",
	Long: `Launch the terminal dashboard against a running raglab server.

The dashboard shows corpus statistics, a retrieval mode breakdown, and
the historical question log. Each panel fetches independently; a panel
whose fetch fails shows its empty state while the others render normally.

Controls:
  ↑/k, ↓/j - Scroll the question log
  r        - Refresh both panels
  q        - Quit`,
	RunE: runDash,
}

func init() {
	dashCmd.Flags().StringVar(&dashAPIBaseURL, "api", "", "base URL of the raglab server (overrides config)")
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in dashboard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The dashboard owns the terminal, so logging is disabled rather
	// than risking log lines corrupting the display.
	logger.Discard()

	baseURL := cfg.Dashboard.APIBaseURL
	if dashAPIBaseURL != "" {
		baseURL = dashAPIBaseURL
	}

	client := api.NewClient(baseURL)

	app, err := tui.NewApp(tui.NewPorts(client, client))
	if err != nil {
		return fmt.Errorf("creating dashboard: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
