package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driven/api"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/config"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/core/domain"
	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

var (
	askMode       string
	askTopK       int
	askJSON       bool
	askAPIBaseURL string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question against the corpus",
	Long: `Ask a question against a running raglab server. The answer is grounded
in retrieved chunks and every call is recorded in the question log shown
by the dashboard.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askMode, "mode", "m", domain.ModeHybrid, "retrieval mode (bm25, dense, hybrid)")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of chunks to retrieve (0 = server default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the result as JSON")
	askCmd.Flags().StringVar(&askAPIBaseURL, "api", "", "base URL of the raglab server (overrides config)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Discard()

	if !domain.ValidMode(askMode) {
		return fmt.Errorf("invalid retrieval mode %q", askMode)
	}

	baseURL := cfg.Dashboard.APIBaseURL
	if askAPIBaseURL != "" {
		baseURL = askAPIBaseURL
	}
	client := api.NewClient(baseURL)

	result, err := client.Ask(cmd.Context(), domain.QueryRequest{
		Question: args[0],
		Mode:     askMode,
		TopK:     askTopK,
	})
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputAskText(cmd, result)
}

func outputAskText(cmd *cobra.Command, result *domain.QueryResult) error {
	if result.Refused {
		cmd.Printf("Refused: %s\n", result.Reason)
		cmd.Printf("Answerability: %s\n", result.Answerability)
		return nil
	}

	cmd.Println(result.Answer)
	cmd.Println()
	cmd.Printf("Answerability: %s", result.Answerability)
	if result.Grounded {
		cmd.Printf("  (grounded in %d citation(s))", len(result.Citations))
	}
	cmd.Println()

	if len(result.Citations) > 0 {
		cmd.Println("Citations:")
		for i, c := range result.Citations {
			title := c.DocumentTitle
			if title == "" {
				title = c.DocumentID
			}
			snippet := c.Snippet
			if len(snippet) > 120 {
				snippet = snippet[:117] + "..."
			}
			snippet = strings.ReplaceAll(snippet, "\n", " ")
			cmd.Printf("  [%d] %s (%.2f)\n      %s\n", i+1, title, c.Score, snippet)
		}
	}

	return nil
}
